// Package customers stores customer contacts.
package customers

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	// CreateIfAbsent inserts c unless a customer with the same email exists,
	// in which case the existing row is returned with created == false.
	CreateIfAbsent(ctx context.Context, c *models.Customer) (customer *models.Customer, created bool, err error)
}
