package ports

import (
	"context"

	"github.com/tanglome/content-api/internal/core/domain"
)

// Sort orders accepted by the list endpoints.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortPopular  = "popular"  // views descending
	SortFeatured = "featured" // featured first, then newest
)

// ListContentFilter carries the query parameters for listing articles.
// Category, Industry and Difficulty only apply to case studies.
type ListContentFilter struct {
	Status     domain.ContentStatus // empty = no status filter
	AuthorID   string               // optional: scope to one author
	Tag        string               // optional: tag membership
	Category   string
	Industry   string
	Difficulty string
	Search     string // optional: text search across title/description/content
	Sort       string // one of the Sort constants; defaults to newest
	Page       int    // 1-based
	Limit      int
}

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	FindBySlug(ctx context.Context, slug string, status domain.ContentStatus) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// Update writes the editable fields only; the engagement counters are
	// owned by IncrementCounter and must survive a concurrent Update.
	Update(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) error
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	List(ctx context.Context, filter ListContentFilter) ([]*domain.Blog, int64, error)
	// IncrementCounter atomically adds one to the named counter and returns
	// the new value.
	IncrementCounter(ctx context.Context, id, counter string) (int64, error)
}

// CaseStudyRepository defines persistence operations for case studies.
type CaseStudyRepository interface {
	Create(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error)
	FindBySlug(ctx context.Context, slug string, status domain.ContentStatus) (*domain.CaseStudy, error)
	FindByID(ctx context.Context, id string) (*domain.CaseStudy, error)
	Update(ctx context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) error
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	List(ctx context.Context, filter ListContentFilter) ([]*domain.CaseStudy, int64, error)
	IncrementCounter(ctx context.Context, id, counter string) (int64, error)
}
