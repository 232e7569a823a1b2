// Package services contains server-side business logic. This file implements
// AuthService: login, access token refresh, logout and the expired refresh
// token sweep.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
	"github.com/dmitrijs2005/corpdesk/internal/server/config"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/repomanager"
)

// Logout acknowledgements.
const (
	MessageAllSessionsRevoked = "all_sessions_revoked"
	MessageLoggedOut          = "logged_out_successfully"
)

// UserSummary is the non-sensitive part of an identity returned on login.
type UserSummary struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResult bundles both tokens with the identity they were issued for.
type LoginResult struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// dummyHash is compared against when the email is unknown so both failure
// paths pay for one bcrypt comparison.
var dummyHash, _ = auth.HashPassword("corpdesk-dummy-password")

// Login verifies the credentials and, on success, issues an access token and
// a persisted refresh token. Unknown email and wrong password both yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.VerifyPassword(password, dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	id := auth.Identity{UserID: user.ID, Role: user.Role}
	access, err := auth.GenerateToken(id, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing access token: %w", err)
	}

	refresh, err := common.MakeRandHexString(common.RefreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token: %w", err)
	}

	if err := s.repomanager.RefreshTokens(s.db).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         UserSummary{ID: user.ID, Email: user.Email, Role: user.Role},
	}, nil
}

// Refresh mints a new access token from a stored, unexpired refresh token.
// The role is re-read from the owning identity. The refresh token itself is
// not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", common.ErrRefreshTokenRequired
	}

	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(s.now()) {
		return "", common.ErrRefreshTokenExpired
	}

	access, err := auth.GenerateToken(auth.Identity{UserID: token.UserID, Role: token.Role}, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error signing access token: %w", err)
	}
	return access, nil
}

// Logout revokes either every session of the caller (all == true) or the
// single session identified by refreshToken, provided it belongs to the
// caller. Unknown or expired tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, id auth.Identity, refreshToken string, all bool) (string, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	if all {
		if _, err := repo.DeleteAllForUser(ctx, id.UserID); err != nil {
			return "", fmt.Errorf("error revoking sessions: %w", err)
		}
		return MessageAllSessionsRevoked, nil
	}

	if refreshToken == "" {
		return "", common.ErrRefreshTokenRequired
	}
	if err := repo.Delete(ctx, refreshToken, id.UserID); err != nil {
		return "", fmt.Errorf("error revoking session: %w", err)
	}
	return MessageLoggedOut, nil
}

// SweepExpired deletes refresh tokens past their expiry.
func (s *AuthService) SweepExpired(ctx context.Context) (int64, error) {
	return s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx)
}
