package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleAuthor = "author"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrSelfAdminAction = errors.New("cannot perform this action on your own account")

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin || s == RoleAuthor
}

// SocialLinks holds optional profile links.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty" bson:"github,omitempty"`
}

// Preferences holds reader-facing settings.
type Preferences struct {
	Categories []string `json:"categories" bson:"categories"`
	Newsletter bool     `json:"newsletter" bson:"newsletter"`
}

// UserStats aggregates per-user engagement counts.
type UserStats struct {
	ArticlesRead    int       `json:"articlesRead" bson:"articles_read"`
	CaseStudiesRead int       `json:"caseStudiesRead" bson:"case_studies_read"`
	Bookmarks       int       `json:"bookmarks" bson:"bookmarks"`
	LastActive      time.Time `json:"lastActive" bson:"last_active"`
}

// User models an account in the system. Email is stored lowercased and is
// unique. PasswordHash and the reset fields never leave the service layer.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Avatar       string      `json:"avatar,omitempty"`
	Role         string      `json:"role"`
	Bio          string      `json:"bio,omitempty"`
	Company      string      `json:"company,omitempty"`
	Position     string      `json:"position,omitempty"`
	Website      string      `json:"website,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	Preferences  Preferences `json:"preferences"`
	Stats        UserStats   `json:"stats"`

	ResetToken        string    `json:"-"`
	ResetTokenExpires time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeEmail canonicalizes an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
