package auth

import "github.com/dmitrijs2005/corpdesk/internal/common"

// RequireAdmin passes only for admins.
func RequireAdmin(id Identity) error {
	if !id.IsAdmin() {
		return common.ErrAdminAccessRequired
	}
	return nil
}

// RequireSelfOrAdmin passes for admins and for the owner of the resource.
// ownerID must come from the request target, never from the body.
func RequireSelfOrAdmin(id Identity, ownerID int64) error {
	if id.IsAdmin() || id.UserID == ownerID {
		return nil
	}
	return common.ErrForbidden
}
