// Package admins stores the admin contact directory (table "admin").
package admins

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	CreateIfAbsent(ctx context.Context, a *models.Admin) (admin *models.Admin, created bool, err error)
}
