package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

// CaseStudyService mirrors BlogService for the case-study variant, which
// carries classification fields and a download counter on top of the shared
// article shape.
type CaseStudyService struct {
	repo ports.CaseStudyRepository
	log  zerolog.Logger
}

func NewCaseStudyService(repo ports.CaseStudyRepository, log zerolog.Logger) *CaseStudyService {
	return &CaseStudyService{repo: repo, log: log}
}

func (s *CaseStudyService) Create(ctx context.Context, caller ports.Caller, input ports.CreateCaseStudyInput) (*domain.CaseStudy, error) {
	if err := domain.Authorize(caller.Role, caller.ID, "", domain.OpCreateContent); err != nil {
		return nil, err
	}

	ve := &domain.ValidationError{}
	validateArticleFields(input.Title, input.Description, input.Content, ve)
	if !validCaseStudyCategory(input.Category) {
		ve.Add("category", "invalid category: must be one of "+strings.Join(domain.CaseStudyCategories, ", "))
	}
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
	cs := &domain.CaseStudy{
		Article: domain.Article{
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
		},
		Category:   input.Category,
		Industry:   input.Industry,
		Difficulty: input.Difficulty,
	}
	cs.Touch()
	if status == domain.StatusPublished {
		cs.PublishedAt = now
	}

	created, err := s.repo.Create(ctx, cs)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", created.Slug).Str("author_id", caller.ID).Msg("case study created")
	return created, nil
}

func (s *CaseStudyService) GetBySlug(ctx context.Context, slug string) (*domain.CaseStudy, error) {
	cs, err := s.repo.FindBySlug(ctx, slug, domain.StatusPublished)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.IncrementCounter(ctx, cs.ID, domain.CounterViews)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("failed to increment views")
	} else {
		cs.Views = views
	}
	return cs, nil
}

func (s *CaseStudyService) List(ctx context.Context, filter ports.ListContentFilter) (*ports.ListCaseStudiesResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	if filter.Status == "" {
		filter.Status = domain.StatusPublished
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list case studies: %w", err)
	}

	return &ports.ListCaseStudiesResult{
		Items:      items,
		Pagination: ports.PageOf(filter.Page, filter.Limit, total),
	}, nil
}

func (s *CaseStudyService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateCaseStudyInput) (*domain.CaseStudy, error) {
	cs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(caller.Role, caller.ID, cs.AuthorID, domain.OpUpdateContent); err != nil {
		return nil, err
	}

	if input.Title != nil {
		cs.Title = *input.Title
	}
	if input.Description != nil {
		cs.Description = *input.Description
	}
	if input.Content != nil {
		cs.Content = *input.Content
	}
	if input.Category != nil {
		cs.Category = *input.Category
	}
	if input.Industry != nil {
		cs.Industry = *input.Industry
	}
	if input.Difficulty != nil {
		cs.Difficulty = *input.Difficulty
	}
	if input.Tags != nil {
		cs.Tags = cleanTags(input.Tags)
	}
	if input.Featured != nil {
		cs.Featured = *input.Featured
	}
	if input.Image != nil {
		cs.Image = *input.Image
	}

	ve := &domain.ValidationError{}
	validateArticleFields(cs.Title, cs.Description, cs.Content, ve)
	if !validCaseStudyCategory(cs.Category) {
		ve.Add("category", "invalid category: must be one of "+strings.Join(domain.CaseStudyCategories, ", "))
	}
	if input.Status != nil && !input.Status.Valid() {
		ve.Add("status", "status must be draft, published or archived")
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	now := time.Now().UTC()
	if input.Status != nil {
		if *input.Status == domain.StatusPublished && cs.PublishedAt.IsZero() {
			cs.PublishedAt = now
		}
		cs.Status = *input.Status
	}
	cs.Touch()
	cs.UpdatedAt = now

	return s.repo.Update(ctx, cs)
}

func (s *CaseStudyService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	cs, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.Authorize(caller.Role, caller.ID, cs.AuthorID, domain.OpDeleteContent); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("slug", cs.Slug).Str("deleted_by", caller.ID).Msg("case study deleted")
	return nil
}

// AddEngagement accepts the download counter in addition to the shared ones.
func (s *CaseStudyService) AddEngagement(ctx context.Context, id, counter string) (int64, error) {
	switch counter {
	case domain.CounterLikes, domain.CounterShares, domain.CounterBookmarks, domain.CounterDownloads:
	default:
		return 0, domain.Invalid("counter", "unknown engagement counter")
	}
	return s.repo.IncrementCounter(ctx, id, counter)
}
