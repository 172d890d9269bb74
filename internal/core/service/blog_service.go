package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

// BlogService implements the blog post use cases: role-gated CRUD, published
// listing and at-least-once engagement counters.
type BlogService struct {
	repo ports.BlogRepository
	log  zerolog.Logger
}

func NewBlogService(repo ports.BlogRepository, log zerolog.Logger) *BlogService {
	return &BlogService{repo: repo, log: log}
}

func (s *BlogService) Create(ctx context.Context, caller ports.Caller, input ports.CreateBlogInput) (*domain.Blog, error) {
	if err := domain.Authorize(caller.Role, caller.ID, "", domain.OpCreateContent); err != nil {
		return nil, err
	}

	ve := &domain.ValidationError{}
	validateArticleFields(input.Title, input.Description, input.Content, ve)
	status := input.Status
	if status == "" {
		status = domain.StatusPublished
	}
	if !status.Valid() {
		ve.Add("status", "status must be draft, published or archived")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	now := time.Now().UTC()
	blog := &domain.Blog{Article: domain.Article{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Tags:        cleanTags(input.Tags),
		AuthorID:    caller.ID,
		AuthorName:  caller.Name,
		Status:      status,
		Featured:    input.Featured,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}}
	blog.Touch()
	if status == domain.StatusPublished {
		blog.PublishedAt = now
	}

	created, err := s.repo.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Str("author_id", caller.ID).Msg("blog post created")
	return created, nil
}

// GetBySlug returns a published post and bumps its view counter. The
// increment is atomic in the store and independent of caller identity.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	blog, err := s.repo.FindBySlug(ctx, slug, domain.StatusPublished)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.IncrementCounter(ctx, blog.ID, domain.CounterViews)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("failed to increment views")
	} else {
		blog.Views = views
	}
	return blog, nil
}

func (s *BlogService) List(ctx context.Context, filter ports.ListContentFilter) (*ports.ListBlogsResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	if filter.Status == "" {
		filter.Status = domain.StatusPublished
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return &ports.ListBlogsResult{
		Items:      items,
		Pagination: ports.PageOf(filter.Page, filter.Limit, total),
	}, nil
}

func (s *BlogService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateBlogInput) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(caller.Role, caller.ID, blog.AuthorID, domain.OpUpdateContent); err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = *input.Title
	}
	if input.Description != nil {
		blog.Description = *input.Description
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Tags != nil {
		blog.Tags = cleanTags(input.Tags)
	}
	if input.Featured != nil {
		blog.Featured = *input.Featured
	}
	if input.Image != nil {
		blog.Image = *input.Image
	}

	ve := &domain.ValidationError{}
	validateArticleFields(blog.Title, blog.Description, blog.Content, ve)
	if input.Status != nil && !input.Status.Valid() {
		ve.Add("status", "status must be draft, published or archived")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	now := time.Now().UTC()
	if input.Status != nil {
		// PublishedAt is stamped exactly once, on the first transition to
		// published; later transitions leave it untouched.
		if *input.Status == domain.StatusPublished && blog.PublishedAt.IsZero() {
			blog.PublishedAt = now
		}
		blog.Status = *input.Status
	}
	blog.Touch()
	blog.UpdatedAt = now

	updated, err := s.repo.Update(ctx, blog)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *BlogService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(caller.Role, caller.ID, blog.AuthorID, domain.OpDeleteContent); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("slug", blog.Slug).Str("deleted_by", caller.ID).Msg("blog post deleted")
	return nil
}

// AddEngagement bumps the named counter by one. Repeated calls from the same
// caller keep incrementing: the counters are at-least-once by design.
func (s *BlogService) AddEngagement(ctx context.Context, id, counter string) (int64, error) {
	switch counter {
	case domain.CounterLikes, domain.CounterShares, domain.CounterBookmarks:
	default:
		return 0, domain.Invalid("counter", "unknown engagement counter")
	}
	return s.repo.IncrementCounter(ctx, id, counter)
}
