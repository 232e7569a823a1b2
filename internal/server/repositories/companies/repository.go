// Package companies stores company profiles (table "company").
package companies

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

// Repository persists companies. cname is the natural unique key.
type Repository interface {
	List(ctx context.Context) ([]*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	CreateIfAbsent(ctx context.Context, c *models.Company) (company *models.Company, created bool, err error)
	Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error)
	Delete(ctx context.Context, id int64) (*models.Company, error)
}
