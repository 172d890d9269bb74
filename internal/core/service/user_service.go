package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

// UserService covers account-level operations: stats, own-content listing,
// account deletion with its content cascade, and admin user management.
type UserService struct {
	users       ports.UserRepository
	blogs       ports.BlogRepository
	caseStudies ports.CaseStudyRepository
	log         zerolog.Logger
}

func NewUserService(users ports.UserRepository, blogs ports.BlogRepository, caseStudies ports.CaseStudyRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, blogs: blogs, caseStudies: caseStudies, log: log}
}

func (s *UserService) Stats(ctx context.Context, userID string) (*ports.UserStatsResult, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	blogCount, err := s.blogs.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}
	csCount, err := s.caseStudies.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count case studies: %w", err)
	}

	return &ports.UserStatsResult{
		Content: ports.ContentStats{
			Blogs:       blogCount,
			CaseStudies: csCount,
			Total:       blogCount + csCount,
		},
		Reading: user.Stats,
	}, nil
}

// OwnContent lists the caller's authored items regardless of status, so
// drafts show up in the author dashboard.
func (s *UserService) OwnContent(ctx context.Context, userID string, input ports.OwnContentInput) (*ports.OwnContentResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListContentFilter{
		AuthorID: userID,
		Status:   input.Status,
		Sort:     ports.SortNewest,
		Page:     page,
		Limit:    limit,
	}

	result := &ports.OwnContentResult{
		Blogs:       []*domain.Blog{},
		CaseStudies: []*domain.CaseStudy{},
	}
	var total int64

	if input.Type == "blogs" || input.Type == "all" || input.Type == "" {
		items, n, err := s.blogs.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list own blogs: %w", err)
		}
		result.Blogs = items
		total += n
	}
	if input.Type == "case-studies" || input.Type == "all" || input.Type == "" {
		items, n, err := s.caseStudies.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list own case studies: %w", err)
		}
		result.CaseStudies = items
		total += n
	}

	result.Pagination = ports.PageOf(page, limit, total)
	return result, nil
}

// DeleteAccount removes the account and everything it authored. The content
// cascade runs first so a failure leaves the account intact and retryable.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.blogs.DeleteByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("delete authored blogs: %w", err)
	}
	if err := s.caseStudies.DeleteByAuthor(ctx, userID); err != nil {
		return fmt.Errorf("delete authored case studies: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("account deleted")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, caller ports.Caller, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	if err := domain.Authorize(caller.Role, caller.ID, "", domain.OpManageUsers); err != nil {
		return nil, err
	}

	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	if filter.Role != "" && !domain.ValidRole(filter.Role) {
		return nil, domain.Invalid("role", "invalid role")
	}

	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &ports.ListUsersResult{
		Items:      items,
		Pagination: ports.PageOf(filter.Page, filter.Limit, total),
	}, nil
}

// UpdateRole changes another user's role. Admins cannot change their own
// role through this path.
func (s *UserService) UpdateRole(ctx context.Context, caller ports.Caller, userID, role string) (*domain.User, error) {
	if err := domain.Authorize(caller.Role, caller.ID, "", domain.OpManageUsers); err != nil {
		return nil, err
	}
	if userID == caller.ID {
		return nil, domain.ErrSelfAdminAction
	}
	if !domain.ValidRole(role) {
		return nil, domain.Invalid("role", "invalid role")
	}

	user, err := s.users.SetRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Str("by", caller.ID).Msg("user role updated")
	return user, nil
}

// DeleteUser removes another account and cascades its content. Admins cannot
// delete themselves through this path.
func (s *UserService) DeleteUser(ctx context.Context, caller ports.Caller, userID string) error {
	if err := domain.Authorize(caller.Role, caller.ID, "", domain.OpManageUsers); err != nil {
		return err
	}
	if userID == caller.ID {
		return domain.ErrSelfAdminAction
	}
	return s.DeleteAccount(ctx, userID)
}
