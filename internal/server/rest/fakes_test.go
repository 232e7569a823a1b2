package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/logging"
	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/services"
)

const testSecret = "test-secret"

// ---- fakes ----

type fakeAuth struct {
	loginResp *services.LoginResult
	loginErr  error

	refreshResp string
	refreshErr  error

	logoutResp string
	logoutErr  error

	gotLogout struct {
		id    auth.Identity
		token string
		all   bool
	}
}

func (f *fakeAuth) Login(context.Context, string, string) (*services.LoginResult, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Refresh(context.Context, string) (string, error) {
	return f.refreshResp, f.refreshErr
}

func (f *fakeAuth) Logout(_ context.Context, id auth.Identity, token string, all bool) (string, error) {
	f.gotLogout.id, f.gotLogout.token, f.gotLogout.all = id, token, all
	return f.logoutResp, f.logoutErr
}

type fakeUsers struct {
	users map[int64]*models.User
	err   error

	gotCaller auth.Identity
	gotUpdate services.UserUpdate
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[int64]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, in services.NewUser) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.Email == "" || in.Password == "" {
		return nil, common.ErrorValidation
	}
	u := &models.User{ID: int64(len(f.users) + 1), Email: in.Email, Role: models.RoleUser, PasswordHash: "hash"}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) List(context.Context) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.User
	for i := int64(1); i <= int64(len(f.users)); i++ {
		if u, ok := f.users[i]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsers) Update(_ context.Context, caller auth.Identity, id int64, in services.UserUpdate) (*models.User, error) {
	f.gotCaller, f.gotUpdate = caller, in
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if in.Fname != nil {
		u.Fname = *in.Fname
	}
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.users, id)
	return u, nil
}

type fakeDirectory struct {
	customers []*models.Customer
	admins    []*models.Admin
	companies []*models.Company
	projects  []*models.Project
	err       error

	gotPatch models.CompanyPatch
}

func find[T any](items []T, id int64, idOf func(T) int64) (T, error) {
	for _, it := range items {
		if idOf(it) == id {
			return it, nil
		}
	}
	var zero T
	return zero, common.ErrorNotFound
}

func (f *fakeDirectory) ListCustomers(context.Context) ([]*models.Customer, error) {
	return f.customers, f.err
}

func (f *fakeDirectory) GetCustomer(_ context.Context, id int64) (*models.Customer, error) {
	return find(f.customers, id, func(c *models.Customer) int64 { return c.ID })
}

func (f *fakeDirectory) CreateCustomer(_ context.Context, c *models.Customer) (*models.Customer, bool, error) {
	if c.Fname == "" || c.Lname == "" || c.Email == "" || c.Phone == "" {
		return nil, false, common.ErrorValidation
	}
	for _, existing := range f.customers {
		if existing.Email == c.Email {
			return existing, false, nil
		}
	}
	c.ID = int64(len(f.customers) + 1)
	f.customers = append(f.customers, c)
	return c, true, nil
}

func (f *fakeDirectory) ListAdmins(context.Context) ([]*models.Admin, error) {
	return f.admins, f.err
}

func (f *fakeDirectory) GetAdmin(_ context.Context, id int64) (*models.Admin, error) {
	return find(f.admins, id, func(a *models.Admin) int64 { return a.ID })
}

func (f *fakeDirectory) CreateAdmin(_ context.Context, a *models.Admin) (*models.Admin, bool, error) {
	if a.Email == "" || a.Gender == "" {
		return nil, false, common.ErrorValidation
	}
	a.ID = int64(len(f.admins) + 1)
	f.admins = append(f.admins, a)
	return a, true, nil
}

func (f *fakeDirectory) ListCompanies(context.Context) ([]*models.Company, error) {
	return f.companies, f.err
}

func (f *fakeDirectory) GetCompany(_ context.Context, id int64) (*models.Company, error) {
	return find(f.companies, id, func(c *models.Company) int64 { return c.ID })
}

func (f *fakeDirectory) CreateCompany(_ context.Context, c *models.Company) (*models.Company, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if c.Cname == "" {
		return nil, false, common.ErrorValidation
	}
	for _, existing := range f.companies {
		if existing.Cname == c.Cname {
			return existing, false, nil
		}
	}
	c.ID = int64(len(f.companies) + 1)
	f.companies = append(f.companies, c)
	return c, true, nil
}

func (f *fakeDirectory) UpdateCompany(_ context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	f.gotPatch = patch
	if patch.Empty() {
		return nil, common.ErrNoFields
	}
	c, err := f.GetCompany(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if patch.Cname != nil {
		c.Cname = *patch.Cname
	}
	return c, nil
}

func (f *fakeDirectory) DeleteCompany(_ context.Context, id int64) (*models.Company, error) {
	return find(f.companies, id, func(c *models.Company) int64 { return c.ID })
}

func (f *fakeDirectory) ListProjects(context.Context) ([]*models.Project, error) {
	return f.projects, f.err
}

func (f *fakeDirectory) GetProject(_ context.Context, id int64) (*models.Project, error) {
	return find(f.projects, id, func(p *models.Project) int64 { return p.ID })
}

func (f *fakeDirectory) CreateProject(_ context.Context, p *models.Project) (*models.Project, error) {
	if p.Cprojectname == "" || p.Plocation == "" {
		return nil, common.ErrorValidation
	}
	p.ID = int64(len(f.projects) + 1)
	f.projects = append(f.projects, p)
	return p, nil
}

// ---- helpers ----

type testEnv struct {
	srv       *HTTPServer
	handler   http.Handler
	auth      *fakeAuth
	users     *fakeUsers
	directory *fakeDirectory
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:      &fakeAuth{},
		users:     newFakeUsers(),
		directory: &fakeDirectory{},
	}
	env.srv = NewHTTPServer("127.0.0.1:0", logging.Discard(), env.auth, env.users, env.directory, testSecret, []string{"*"})
	env.srv.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	env.handler = env.srv.Handler()
	return env
}

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(auth.Identity{UserID: userID, Role: role}, []byte(testSecret), time.Minute)
	require.NoError(t, err)
	return tok
}

func (env *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}
