package ports

import (
	"context"

	"github.com/tanglome/content-api/internal/core/domain"
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult pairs an issued token with the public profile.
type AuthResult struct {
	Token string
	User  *domain.User
}

// ChangePasswordInput carries an authenticated password change.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// ResetPasswordInput carries a token-based password reset.
type ResetPasswordInput struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// AuthService implements registration, login and credential management.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// VerifyToken is the gate every protected route depends on: it validates
	// the bearer token and resolves the account it references.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	// RequestPasswordReset never reveals whether the email exists. The
	// returned token is non-empty only when an account matched; callers must
	// not expose it outside development.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}
