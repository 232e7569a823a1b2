package rest

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, id auth.Identity, refreshToken string, all bool) (string, error)
}

type UserService interface {
	Create(ctx context.Context, in services.NewUser) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, caller auth.Identity, id int64, in services.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.User, error)
}

type DirectoryService interface {
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) (*models.Customer, bool, error)

	ListAdmins(ctx context.Context) ([]*models.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*models.Admin, error)
	CreateAdmin(ctx context.Context, a *models.Admin) (*models.Admin, bool, error)

	ListCompanies(ctx context.Context) ([]*models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	CreateCompany(ctx context.Context, c *models.Company) (*models.Company, bool, error)
	UpdateCompany(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error)
	DeleteCompany(ctx context.Context, id int64) (*models.Company, error)

	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
}

var (
	_ AuthService      = (*services.AuthService)(nil)
	_ UserService      = (*services.UserService)(nil)
	_ DirectoryService = (*services.DirectoryService)(nil)
)
