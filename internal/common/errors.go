// Package common defines shared constants and sentinel errors used across
// the layers of corpdesk. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
	ErrNoFields     = errors.New("no updatable fields")

	// Credential errors. Unknown email and wrong password share one value.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Access token errors.
	ErrTokenMissing = errors.New("token missing")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Refresh token lifecycle errors.
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrRefreshTokenRequired = errors.New("refresh token required")

	// Authorization errors.
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrForbidden           = errors.New("forbidden")
)
