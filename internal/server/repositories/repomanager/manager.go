package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/admins"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/companies"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/customers"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/projects"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle, so services can
// run several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Customers(db dbx.DBTX) customers.Repository
	Admins(db dbx.DBTX) admins.Repository
	Companies(db dbx.DBTX) companies.Repository
	Projects(db dbx.DBTX) projects.Repository
}
