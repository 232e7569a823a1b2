package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/config"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/admins"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/companies"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/customers"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/projects"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/users"
)

// --- in-memory store shared by the fake repositories ---

type memStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
	tokens map[string]*memToken

	customers []*models.Customer
	admins    []*models.Admin
	companies []*models.Company
	projects  []*models.Project

	// injected failures
	usersErr  error
	tokensErr error
}

type memToken struct {
	userID    int64
	expiresAt time.Time
}

func newMemStore() *memStore {
	return &memStore{users: map[int64]*models.User{}, tokens: map[string]*memToken{}}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeUsers struct{ s *memStore }

func (f fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.usersErr != nil {
		return nil, f.s.usersErr
	}
	for _, existing := range f.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateKey
		}
	}
	c := *u
	c.ID = f.s.id()
	f.s.users[c.ID] = &c
	out := c
	return &out, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.usersErr != nil {
		return nil, f.s.usersErr
	}
	for _, u := range f.s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f fakeUsers) List(_ context.Context) ([]*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]*models.User, 0, len(f.s.users))
	for _, u := range f.s.users {
		c := *u
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeUsers) Update(_ context.Context, id int64, p models.UserPatch) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.usersErr != nil {
		return nil, f.s.usersErr
	}
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.Fname, p.Fname)
	set(&u.Lname, p.Lname)
	set(&u.Email, p.Email)
	set(&u.Phone, p.Phone)
	set(&u.Cname, p.Cname)
	set(&u.Pname, p.Pname)
	set(&u.Department, p.Department)
	set(&u.Role, p.Role)
	set(&u.PasswordHash, p.PasswordHash)
	out := *u
	return &out, nil
}

func (f fakeUsers) Delete(_ context.Context, id int64) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.s.users, id)
	return u, nil
}

type fakeTokens struct{ s *memStore }

func (f fakeTokens) Create(_ context.Context, userID int64, token string, validity time.Duration) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.tokensErr != nil {
		return f.s.tokensErr
	}
	if _, dup := f.s.tokens[token]; dup {
		return common.ErrDuplicateKey
	}
	f.s.tokens[token] = &memToken{userID: userID, expiresAt: time.Now().Add(validity)}
	return nil
}

func (f fakeTokens) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.tokensErr != nil {
		return nil, f.s.tokensErr
	}
	t, ok := f.s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u, ok := f.s.users[t.userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &models.RefreshToken{Token: token, UserID: u.ID, Role: u.Role, ExpiresAt: t.expiresAt}, nil
}

func (f fakeTokens) Delete(_ context.Context, token string, userID int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.tokensErr != nil {
		return f.s.tokensErr
	}
	if t, ok := f.s.tokens[token]; ok && t.userID == userID {
		delete(f.s.tokens, token)
	}
	return nil
}

func (f fakeTokens) DeleteAllForUser(_ context.Context, userID int64) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.tokensErr != nil {
		return 0, f.s.tokensErr
	}
	var n int64
	for k, t := range f.s.tokens {
		if t.userID == userID {
			delete(f.s.tokens, k)
			n++
		}
	}
	return n, nil
}

func (f fakeTokens) DeleteExpired(_ context.Context) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var n int64
	for k, t := range f.s.tokens {
		if t.expiresAt.Before(time.Now()) {
			delete(f.s.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeCustomers struct{ s *memStore }

func (f fakeCustomers) List(context.Context) ([]*models.Customer, error) { return f.s.customers, nil }

func (f fakeCustomers) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	for _, c := range f.s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeCustomers) CreateIfAbsent(_ context.Context, in *models.Customer) (*models.Customer, bool, error) {
	for _, c := range f.s.customers {
		if c.Email == in.Email {
			return c, false, nil
		}
	}
	c := *in
	c.ID = f.s.id()
	f.s.customers = append(f.s.customers, &c)
	return &c, true, nil
}

type fakeAdmins struct{ s *memStore }

func (f fakeAdmins) List(context.Context) ([]*models.Admin, error) { return f.s.admins, nil }

func (f fakeAdmins) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	for _, a := range f.s.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeAdmins) CreateIfAbsent(_ context.Context, in *models.Admin) (*models.Admin, bool, error) {
	for _, a := range f.s.admins {
		if a.Email == in.Email {
			return a, false, nil
		}
	}
	a := *in
	a.ID = f.s.id()
	f.s.admins = append(f.s.admins, &a)
	return &a, true, nil
}

type fakeCompanies struct{ s *memStore }

func (f fakeCompanies) List(context.Context) ([]*models.Company, error) { return f.s.companies, nil }

func (f fakeCompanies) GetByID(_ context.Context, id int64) (*models.Company, error) {
	for _, c := range f.s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeCompanies) CreateIfAbsent(_ context.Context, in *models.Company) (*models.Company, bool, error) {
	for _, c := range f.s.companies {
		if c.Cname == in.Cname {
			return c, false, nil
		}
	}
	c := *in
	c.ID = f.s.id()
	f.s.companies = append(f.s.companies, &c)
	return &c, true, nil
}

func (f fakeCompanies) Update(_ context.Context, id int64, p models.CompanyPatch) (*models.Company, error) {
	c, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if p.Cname != nil {
		c.Cname = *p.Cname
	}
	if p.Caddress != nil {
		c.Caddress = *p.Caddress
	}
	if p.Cgst != nil {
		c.Cgst = p.Cgst
	}
	if p.Cphone != nil {
		c.Cphone = *p.Cphone
	}
	if p.CownerName != nil {
		c.CownerName = *p.CownerName
	}
	return c, nil
}

func (f fakeCompanies) Delete(_ context.Context, id int64) (*models.Company, error) {
	for i, c := range f.s.companies {
		if c.ID == id {
			f.s.companies = append(f.s.companies[:i], f.s.companies[i+1:]...)
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeProjects struct{ s *memStore }

func (f fakeProjects) List(context.Context) ([]*models.Project, error) { return f.s.projects, nil }

func (f fakeProjects) GetByID(_ context.Context, id int64) (*models.Project, error) {
	for _, p := range f.s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f fakeProjects) Create(_ context.Context, in *models.Project) (*models.Project, error) {
	p := *in
	p.ID = f.s.id()
	f.s.projects = append(f.s.projects, &p)
	return &p, nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return fakeUsers{m.s} }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return fakeTokens{m.s} }
func (m *fakeRepoManager) Customers(dbx.DBTX) customers.Repository         { return fakeCustomers{m.s} }
func (m *fakeRepoManager) Admins(dbx.DBTX) admins.Repository               { return fakeAdmins{m.s} }
func (m *fakeRepoManager) Companies(dbx.DBTX) companies.Repository         { return fakeCompanies{m.s} }
func (m *fakeRepoManager) Projects(dbx.DBTX) projects.Repository           { return fakeProjects{m.s} }

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 7 * 24 * time.Hour,
	}
}
