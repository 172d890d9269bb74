package domain

import "errors"

// Operation enumerates the actions gated by the authorization policy.
type Operation string

const (
	OpCreateContent Operation = "create"
	OpUpdateContent Operation = "update"
	OpDeleteContent Operation = "delete"
	OpManageUsers   Operation = "manage-users"
)

var ErrForbidden = errors.New("access forbidden")

// Authorize is the single authorization policy: a pure function of the
// caller's role and identity, the resource owner, and the operation.
//
//   - Creating content requires the author role.
//   - Updating or deleting content requires being its author, or admin.
//   - User management requires admin. The self-protection rule (an admin may
//     not modify or delete their own account through the admin path) is
//     enforced separately because it maps to 400, not 403.
func Authorize(role, callerID, ownerID string, op Operation) error {
	switch op {
	case OpCreateContent:
		if role == RoleAuthor {
			return nil
		}
	case OpUpdateContent, OpDeleteContent:
		if role == RoleAdmin {
			return nil
		}
		if callerID != "" && callerID == ownerID {
			return nil
		}
	case OpManageUsers:
		if role == RoleAdmin {
			return nil
		}
	}
	return ErrForbidden
}
