// Package users declares the identity store and its PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

// Repository persists identities. Lookups that match nothing return
// common.ErrorNotFound; unique violations (email) return common.ErrDuplicateKey.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	// Delete removes the identity and returns the deleted row.
	Delete(ctx context.Context, id int64) (*models.User, error)
}
