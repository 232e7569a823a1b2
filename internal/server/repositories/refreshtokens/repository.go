// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID int64, token string, validity time.Duration) error

	// Find looks up a refresh token joined with the current role of its owner.
	// Absent tokens yield common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes the token only if it belongs to userID. Deleting a
	// non-existent token is not an error.
	Delete(ctx context.Context, token string, userID int64) error

	// DeleteAllForUser revokes every session of userID and reports how many were removed.
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)

	// DeleteExpired purges tokens whose expiry has passed.
	DeleteExpired(ctx context.Context) (int64, error)
}
