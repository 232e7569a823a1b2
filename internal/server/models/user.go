// Package models defines server-side data models persisted in the database.
package models

import "time"

// Roles an identity can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a stored identity. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Fname        string    `json:"fname"`
	Lname        string    `json:"lname"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Cname        string    `json:"cname"`
	Pname        string    `json:"pname"`
	Department   string    `json:"department"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserPatch carries a partial update; nil fields are left unchanged.
// PasswordHash is set by the service after hashing a new password.
type UserPatch struct {
	Fname        *string
	Lname        *string
	Email        *string
	Phone        *string
	Cname        *string
	Pname        *string
	Department   *string
	Role         *string
	PasswordHash *string
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Fname == nil && p.Lname == nil && p.Email == nil && p.Phone == nil &&
		p.Cname == nil && p.Pname == nil && p.Department == nil && p.Role == nil &&
		p.PasswordHash == nil
}
