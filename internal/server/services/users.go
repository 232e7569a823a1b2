package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/corpdesk/internal/common"
	"github.com/dmitrijs2005/corpdesk/internal/dbx"
	"github.com/dmitrijs2005/corpdesk/internal/server/auth"
	"github.com/dmitrijs2005/corpdesk/internal/server/models"
	"github.com/dmitrijs2005/corpdesk/internal/server/repositories/repomanager"
)

// NewUser is the input for creating an identity.
type NewUser struct {
	Fname      string `json:"fname"`
	Lname      string `json:"lname"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Cname      string `json:"cname"`
	Pname      string `json:"pname"`
	Department string `json:"department"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// UserUpdate is a partial update; nil fields are left alone.
type UserUpdate struct {
	Fname      *string `json:"fname"`
	Lname      *string `json:"lname"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Cname      *string `json:"cname"`
	Pname      *string `json:"pname"`
	Department *string `json:"department"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
}

// UpdatableUserFields lists the keys UserUpdate understands.
var UpdatableUserFields = []string{"fname", "lname", "email", "phone", "cname", "pname", "department", "password", "role"}

// UserService manages identities. Password changes and deletions also revoke
// the sessions of the affected user.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func validRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

// Create validates input, hashes the password and stores the identity. An
// empty role defaults to "user".
func (s *UserService) Create(ctx context.Context, in NewUser) (*models.User, error) {
	for _, v := range []string{in.Fname, in.Lname, in.Email, in.Phone, in.Cname, in.Pname, in.Department, in.Password} {
		if strings.TrimSpace(v) == "" {
			return nil, common.ErrorValidation
		}
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if !validRole(in.Role) {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	user := &models.User{
		Fname: in.Fname, Lname: in.Lname, Email: in.Email, Phone: in.Phone,
		Cname: in.Cname, Pname: in.Pname, Department: in.Department,
		Role: in.Role, PasswordHash: hash,
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// Update applies a partial update on behalf of caller. Changing the role
// requires an admin caller. A new password is hashed and revokes every
// refresh token of the user in the same transaction.
func (s *UserService) Update(ctx context.Context, caller auth.Identity, id int64, in UserUpdate) (*models.User, error) {
	patch := models.UserPatch{
		Fname: in.Fname, Lname: in.Lname, Email: in.Email, Phone: in.Phone,
		Cname: in.Cname, Pname: in.Pname, Department: in.Department,
	}

	if in.Role != nil {
		if err := auth.RequireAdmin(caller); err != nil {
			return nil, err
		}
		if !validRole(*in.Role) {
			return nil, common.ErrorValidation
		}
		patch.Role = in.Role
	}

	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return nil, common.ErrorValidation
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
		}
		patch.PasswordHash = &hash
	}

	if patch.Empty() {
		return nil, common.ErrNoFields
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if patch.PasswordHash != nil {
			if _, err := s.repomanager.RefreshTokens(tx).DeleteAllForUser(ctx, id); err != nil {
				return err
			}
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the identity together with all its refresh tokens and
// returns the deleted row.
func (s *UserService) Delete(ctx context.Context, id int64) (*models.User, error) {
	var deleted *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.RefreshTokens(tx).DeleteAllForUser(ctx, id); err != nil {
			return err
		}
		u, err := s.repomanager.Users(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
