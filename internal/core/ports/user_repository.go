package ports

import (
	"context"
	"time"

	"github.com/tanglome/content-api/internal/core/domain"
)

// ProfilePatch carries the mutable profile fields. Nil pointers mean
// "leave unchanged"; only these fields can ever be updated through the
// profile path.
type ProfilePatch struct {
	Name        *string
	Bio         *string
	Company     *string
	Position    *string
	Website     *string
	SocialLinks *domain.SocialLinks
	Preferences *domain.Preferences
}

// Empty reports whether the patch carries no change at all.
func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Company == nil && p.Position == nil &&
		p.Website == nil && p.SocialLinks == nil && p.Preferences == nil
}

// ListUsersFilter carries the admin user-listing query.
type ListUsersFilter struct {
	Role   string // optional: filter by role
	Search string // optional: partial match on name, email or company
	Page   int    // 1-based
	Limit  int
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
	SetAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
	// SetPassword replaces the hash and clears any pending reset token.
	SetPassword(ctx context.Context, id, passwordHash string) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	// FindByResetToken resolves a user whose reset token matches and has not
	// expired at the given instant.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	SetRole(ctx context.Context, id, role string) (*domain.User, error)
	TouchLastActive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
