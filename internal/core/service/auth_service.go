package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

const (
	minPasswordLen = 6
	minNameLen     = 2
	maxNameLen     = 50
	maxBioLen      = 500
	maxCompanyLen  = 100
	maxPositionLen = 100
)

// AuthService implements registration, login, token verification and
// credential management on top of a UserRepository.
type AuthService struct {
	users        ports.UserRepository
	jwtSecret    string
	tokenTTL     time.Duration
	resetTTL     time.Duration
	authorEmails map[string]struct{}
	log          zerolog.Logger
}

// NewAuthService builds an AuthService. authorEmails is the configured
// allow-list of identities that are granted the author role at registration
// and login.
func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL, resetTTL time.Duration, authorEmails []string, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	allowed := make(map[string]struct{}, len(authorEmails))
	for _, e := range authorEmails {
		if e = domain.NormalizeEmail(e); e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &AuthService{
		users:        users,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		resetTTL:     resetTTL,
		authorEmails: allowed,
		log:          log,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	ve := &domain.ValidationError{}
	name := strings.TrimSpace(input.Name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		ve.Add("name", fmt.Sprintf("name must be between %d and %d characters", minNameLen, maxNameLen))
	}
	email := domain.NormalizeEmail(input.Email)
	if !strings.Contains(email, "@") {
		ve.Add("email", "please provide a valid email")
	}
	if len(input.Password) < minPasswordLen {
		ve.Add("password", fmt.Sprintf("password must be at least %d characters long", minPasswordLen))
	}
	if input.ConfirmPassword != input.Password {
		ve.Add("confirmPassword", "password confirmation does not match password")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := domain.RoleUser
	if _, ok := s.authorEmails[email]; ok {
		role = domain.RoleAuthor
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Preferences:  domain.Preferences{Newsletter: true},
		Stats:        domain.UserStats{LastActive: now},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Allow-listed identities keep the author role even if it was revoked or
	// the account predates the list.
	if _, ok := s.authorEmails[user.Email]; ok && user.Role == domain.RoleUser {
		if user, err = s.users.SetRole(ctx, user.ID, domain.RoleAuthor); err != nil {
			return nil, err
		}
	}

	if err := s.users.TouchLastActive(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to touch last active")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// VerifyToken validates signature and expiry, then resolves the account the
// token references. Every failure collapses to ErrInvalidToken.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	if len(input.NewPassword) < minPasswordLen {
		return domain.Invalid("newPassword", fmt.Sprintf("new password must be at least %d characters long", minPasswordLen))
	}
	if input.ConfirmPassword != input.NewPassword {
		return domain.Invalid("confirmPassword", "password confirmation does not match new password")
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return domain.Invalid("currentPassword", "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.SetPassword(ctx, user.ID, string(hash))
}

// RequestPasswordReset stores a short-lived reset token when the account
// exists. It returns ("", nil) for unknown emails so the HTTP layer can
// answer identically in both cases.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	expires := time.Now().UTC().Add(s.resetTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Time("expires", expires).Msg("password reset requested")
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, input ports.ResetPasswordInput) error {
	if input.Token == "" {
		return domain.ErrResetTokenInvalid
	}
	if len(input.NewPassword) < minPasswordLen {
		return domain.Invalid("newPassword", fmt.Sprintf("new password must be at least %d characters long", minPasswordLen))
	}
	if input.ConfirmPassword != input.NewPassword {
		return domain.Invalid("confirmPassword", "password confirmation does not match new password")
	}

	user, err := s.users.FindByResetToken(ctx, input.Token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	// SetPassword also clears the reset token, making it single-use.
	return s.users.SetPassword(ctx, user.ID, string(hash))
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, patch ports.ProfilePatch) (*domain.User, error) {
	if patch.Empty() {
		return nil, domain.Invalid("body", "no valid fields to update")
	}

	ve := &domain.ValidationError{}
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		if len(trimmed) < minNameLen || len(trimmed) > maxNameLen {
			ve.Add("name", fmt.Sprintf("name must be between %d and %d characters", minNameLen, maxNameLen))
		} else {
			patch.Name = &trimmed
		}
	}
	if patch.Bio != nil && len(*patch.Bio) > maxBioLen {
		ve.Add("bio", fmt.Sprintf("bio cannot be more than %d characters", maxBioLen))
	}
	if patch.Company != nil && len(*patch.Company) > maxCompanyLen {
		ve.Add("company", fmt.Sprintf("company name cannot be more than %d characters", maxCompanyLen))
	}
	if patch.Position != nil && len(*patch.Position) > maxPositionLen {
		ve.Add("position", fmt.Sprintf("position cannot be more than %d characters", maxPositionLen))
	}
	if patch.Website != nil && *patch.Website != "" && !validURL(*patch.Website) {
		ve.Add("website", "please provide a valid URL")
	}
	if patch.SocialLinks != nil {
		for field, link := range map[string]string{
			"socialLinks.linkedin": patch.SocialLinks.LinkedIn,
			"socialLinks.twitter":  patch.SocialLinks.Twitter,
			"socialLinks.github":   patch.SocialLinks.GitHub,
		} {
			if link != "" && !validURL(link) {
				ve.Add(field, "must be a valid URL")
			}
		}
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	return s.users.UpdateProfile(ctx, userID, patch)
}

func (s *AuthService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	if !validURL(avatar) {
		return nil, domain.Invalid("avatar", "avatar must be a valid URL")
	}
	return s.users.SetAvatar(ctx, userID, avatar)
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func validURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
