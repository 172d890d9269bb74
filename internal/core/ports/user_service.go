package ports

import (
	"context"

	"github.com/tanglome/content-api/internal/core/domain"
)

// ContentStats counts a user's authored items per variant.
type ContentStats struct {
	Blogs       int64 `json:"blogs"`
	CaseStudies int64 `json:"caseStudies"`
	Total       int64 `json:"total"`
}

// UserStatsResult is returned by UserService.Stats.
type UserStatsResult struct {
	Content ContentStats     `json:"content"`
	Reading domain.UserStats `json:"reading"`
}

// OwnContentInput selects a page of the caller's own content.
// Type is "blogs", "case-studies" or "all".
type OwnContentInput struct {
	Type   string
	Status domain.ContentStatus
	Page   int
	Limit  int
}

// OwnContentResult bundles both variants; an unselected variant is empty.
type OwnContentResult struct {
	Blogs       []*domain.Blog
	CaseStudies []*domain.CaseStudy
	Pagination  Pagination
}

// ListUsersResult is returned by the admin user listing.
type ListUsersResult struct {
	Items      []*domain.User
	Pagination Pagination
}

// UserService covers account-level operations beyond credentials.
type UserService interface {
	Stats(ctx context.Context, userID string) (*UserStatsResult, error)
	OwnContent(ctx context.Context, userID string, input OwnContentInput) (*OwnContentResult, error)
	// DeleteAccount removes the account and cascades to its authored content.
	DeleteAccount(ctx context.Context, userID string) error
	// Admin operations. The caller is checked against the authorization
	// policy and the self-protection rule.
	ListUsers(ctx context.Context, caller Caller, filter ListUsersFilter) (*ListUsersResult, error)
	UpdateRole(ctx context.Context, caller Caller, userID, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, caller Caller, userID string) error
}
