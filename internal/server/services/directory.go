package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/repomanager"
)

// DirectoryService serves the plain CRUD entities: customers, admins,
// companies and projects.
type DirectoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager) *DirectoryService {
	return &DirectoryService{db: db, repomanager: m}
}

func required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return common.ErrorValidation
		}
	}
	return nil
}

func (s *DirectoryService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.repomanager.Customers(s.db).List(ctx)
}

func (s *DirectoryService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repomanager.Customers(s.db).GetByID(ctx, id)
}

// CreateCustomer is idempotent on email: created is false when an existing
// customer is returned.
func (s *DirectoryService) CreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, bool, error) {
	if err := required(c.Fname, c.Lname, c.Email, c.Phone); err != nil {
		return nil, false, err
	}
	return s.repomanager.Customers(s.db).CreateIfAbsent(ctx, c)
}

func (s *DirectoryService) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.repomanager.Admins(s.db).List(ctx)
}

func (s *DirectoryService) GetAdmin(ctx context.Context, id int64) (*models.Admin, error) {
	return s.repomanager.Admins(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) CreateAdmin(ctx context.Context, a *models.Admin) (*models.Admin, bool, error) {
	if err := required(a.Fname, a.Lname, a.Email, a.Phone, a.Gender); err != nil {
		return nil, false, err
	}
	return s.repomanager.Admins(s.db).CreateIfAbsent(ctx, a)
}

func (s *DirectoryService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.repomanager.Companies(s.db).List(ctx)
}

func (s *DirectoryService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.repomanager.Companies(s.db).GetByID(ctx, id)
}

// CreateCompany is idempotent on cname. cgst is optional.
func (s *DirectoryService) CreateCompany(ctx context.Context, c *models.Company) (*models.Company, bool, error) {
	if err := required(c.Cname, c.Caddress, c.Cphone, c.CownerName); err != nil {
		return nil, false, err
	}
	return s.repomanager.Companies(s.db).CreateIfAbsent(ctx, c)
}

func (s *DirectoryService) UpdateCompany(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	if patch.Empty() {
		return nil, common.ErrNoFields
	}
	return s.repomanager.Companies(s.db).Update(ctx, id, patch)
}

func (s *DirectoryService) DeleteCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.repomanager.Companies(s.db).Delete(ctx, id)
}

func (s *DirectoryService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

func (s *DirectoryService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if err := required(p.Cprojectname, p.Plocation); err != nil {
		return nil, err
	}
	return s.repomanager.Projects(s.db).Create(ctx, p)
}
