package ports

import (
	"context"

	"github.com/tanglome/content-api/internal/core/domain"
)

// Caller identifies the authenticated actor behind a request. A zero Caller
// means anonymous.
type Caller struct {
	ID   string
	Name string
	Role string
}

// CreateBlogInput carries a new blog post. Status defaults to published when
// empty, matching the product's original behavior.
type CreateBlogInput struct {
	Title       string
	Description string
	Content     string
	Tags        []string
	Status      domain.ContentStatus
	Featured    bool
	Image       string
}

// UpdateBlogInput is a patch; nil fields are left unchanged.
type UpdateBlogInput struct {
	Title       *string
	Description *string
	Content     *string
	Tags        []string
	Status      *domain.ContentStatus
	Featured    *bool
	Image       *string
}

// CreateCaseStudyInput carries a new case study.
type CreateCaseStudyInput struct {
	Title       string
	Description string
	Content     string
	Category    string
	Industry    string
	Difficulty  string
	Tags        []string
	Status      domain.ContentStatus
	Featured    bool
	Image       string
}

// UpdateCaseStudyInput is a patch; nil fields are left unchanged.
type UpdateCaseStudyInput struct {
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Industry    *string
	Difficulty  *string
	Tags        []string
	Status      *domain.ContentStatus
	Featured    *bool
	Image       *string
}

// Pagination is the envelope common to every list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ListBlogsResult is returned by BlogService.List.
type ListBlogsResult struct {
	Items      []*domain.Blog
	Pagination Pagination
}

// ListCaseStudiesResult is returned by CaseStudyService.List.
type ListCaseStudiesResult struct {
	Items      []*domain.CaseStudy
	Pagination Pagination
}

// BlogService defines use-case operations for blog posts.
type BlogService interface {
	Create(ctx context.Context, caller Caller, input CreateBlogInput) (*domain.Blog, error)
	// GetBySlug returns a published post and increments its view counter.
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context, filter ListContentFilter) (*ListBlogsResult, error)
	Update(ctx context.Context, caller Caller, id string, input UpdateBlogInput) (*domain.Blog, error)
	Delete(ctx context.Context, caller Caller, id string) error
	// AddEngagement bumps the named counter by one and returns the new value.
	AddEngagement(ctx context.Context, id, counter string) (int64, error)
}

// CaseStudyService defines use-case operations for case studies.
type CaseStudyService interface {
	Create(ctx context.Context, caller Caller, input CreateCaseStudyInput) (*domain.CaseStudy, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error)
	List(ctx context.Context, filter ListContentFilter) (*ListCaseStudiesResult, error)
	Update(ctx context.Context, caller Caller, id string, input UpdateCaseStudyInput) (*domain.CaseStudy, error)
	Delete(ctx context.Context, caller Caller, id string) error
	AddEngagement(ctx context.Context, id, counter string) (int64, error)
}

// PageOf computes the pagination envelope from a total count.
func PageOf(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
