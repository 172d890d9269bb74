package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

// testLogger discards everything; the services only log informationally.
var testLogger = zerolog.Nop()

// --- user repository stub ---

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int

	touchErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Company != nil {
		u.Company = *patch.Company
	}
	if patch.Position != nil {
		u.Position = *patch.Position
	}
	if patch.Website != nil {
		u.Website = *patch.Website
	}
	if patch.SocialLinks != nil {
		u.SocialLinks = *patch.SocialLinks
	}
	if patch.Preferences != nil {
		u.Preferences = *patch.Preferences
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetAvatar(_ context.Context, id, avatar string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Avatar = avatar
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExpires = time.Time{}
	return nil
}

func (r *stubUserRepo) SetResetToken(_ context.Context, id, token string, expires time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetTokenExpires = expires
	return nil
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, token string, now time.Time) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token && u.ResetTokenExpires.After(now) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetRole(_ context.Context, id, role string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) TouchLastActive(_ context.Context, id string, at time.Time) error {
	if r.touchErr != nil {
		return r.touchErr
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Stats.LastActive = at
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	var matched []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		matched = append(matched, cloneUser(u))
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// copyArticleFields applies the fields an update is allowed to write,
// leaving the counters on dst untouched.
func copyArticleFields(dst, src *domain.Article) {
	dst.Title = src.Title
	dst.Slug = src.Slug
	dst.Description = src.Description
	dst.Content = src.Content
	dst.Tags = src.Tags
	dst.Status = src.Status
	dst.Featured = src.Featured
	dst.Image = src.Image
	dst.ReadTime = src.ReadTime
	if !src.PublishedAt.IsZero() {
		dst.PublishedAt = src.PublishedAt
	}
	dst.UpdatedAt = src.UpdatedAt
}

// --- blog repository stub ---

type stubBlogRepo struct {
	blogs map[string]*domain.Blog
	seq   int

	// beforeUpdate runs at the start of Update, before the stored document
	// changes, to model writes landing between a read and an update.
	beforeUpdate func()
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{blogs: make(map[string]*domain.Blog)}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBlogRepo) Create(_ context.Context, b *domain.Blog) (*domain.Blog, error) {
	for _, existing := range r.blogs {
		if existing.Slug == b.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	r.seq++
	copy := cloneBlog(b)
	copy.ID = fmt.Sprintf("b%d", r.seq)
	r.blogs[copy.ID] = cloneBlog(copy)
	return cloneBlog(copy), nil
}

func (r *stubBlogRepo) FindBySlug(_ context.Context, slug string, status domain.ContentStatus) (*domain.Blog, error) {
	for _, b := range r.blogs {
		if b.Slug == slug && (status == "" || b.Status == status) {
			return cloneBlog(b), nil
		}
	}
	return nil, domain.ErrContentNotFound
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	return cloneBlog(b), nil
}

// Update mirrors the store contract: only the editable fields are written,
// counters stay whatever increments have made them.
func (r *stubBlogRepo) Update(_ context.Context, b *domain.Blog) (*domain.Blog, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	stored, ok := r.blogs[b.ID]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	for id, existing := range r.blogs {
		if id != b.ID && existing.Slug == b.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	copyArticleFields(&stored.Article, &b.Article)
	return cloneBlog(stored), nil
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.blogs[id]; !ok {
		return domain.ErrContentNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *stubBlogRepo) DeleteByAuthor(_ context.Context, authorID string) error {
	for id, b := range r.blogs {
		if b.AuthorID == authorID {
			delete(r.blogs, id)
		}
	}
	return nil
}

func (r *stubBlogRepo) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for _, b := range r.blogs {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *stubBlogRepo) List(_ context.Context, filter ports.ListContentFilter) ([]*domain.Blog, int64, error) {
	var matched []*domain.Blog
	for _, b := range r.blogs {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.AuthorID != "" && b.AuthorID != filter.AuthorID {
			continue
		}
		matched = append(matched, cloneBlog(b))
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubBlogRepo) IncrementCounter(_ context.Context, id, counter string) (int64, error) {
	b, ok := r.blogs[id]
	if !ok {
		return 0, domain.ErrContentNotFound
	}
	switch counter {
	case domain.CounterViews:
		b.Views++
		return b.Views, nil
	case domain.CounterLikes:
		b.Likes++
		return b.Likes, nil
	case domain.CounterShares:
		b.Shares++
		return b.Shares, nil
	case domain.CounterBookmarks:
		b.Bookmarks++
		return b.Bookmarks, nil
	}
	return 0, fmt.Errorf("unknown counter %q", counter)
}

// --- case study repository stub ---

type stubCaseStudyRepo struct {
	studies map[string]*domain.CaseStudy
	seq     int

	beforeUpdate func()
}

func newStubCaseStudyRepo() *stubCaseStudyRepo {
	return &stubCaseStudyRepo{studies: make(map[string]*domain.CaseStudy)}
}

func cloneCaseStudy(cs *domain.CaseStudy) *domain.CaseStudy {
	if cs == nil {
		return nil
	}
	clone := *cs
	return &clone
}

func (r *stubCaseStudyRepo) Create(_ context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	for _, existing := range r.studies {
		if existing.Slug == cs.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	r.seq++
	copy := cloneCaseStudy(cs)
	copy.ID = fmt.Sprintf("cs%d", r.seq)
	r.studies[copy.ID] = cloneCaseStudy(copy)
	return cloneCaseStudy(copy), nil
}

func (r *stubCaseStudyRepo) FindBySlug(_ context.Context, slug string, status domain.ContentStatus) (*domain.CaseStudy, error) {
	for _, cs := range r.studies {
		if cs.Slug == slug && (status == "" || cs.Status == status) {
			return cloneCaseStudy(cs), nil
		}
	}
	return nil, domain.ErrContentNotFound
}

func (r *stubCaseStudyRepo) FindByID(_ context.Context, id string) (*domain.CaseStudy, error) {
	cs, ok := r.studies[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	return cloneCaseStudy(cs), nil
}

func (r *stubCaseStudyRepo) Update(_ context.Context, cs *domain.CaseStudy) (*domain.CaseStudy, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	stored, ok := r.studies[cs.ID]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	for id, existing := range r.studies {
		if id != cs.ID && existing.Slug == cs.Slug {
			return nil, domain.ErrSlugTaken
		}
	}
	copyArticleFields(&stored.Article, &cs.Article)
	stored.Category = cs.Category
	stored.Industry = cs.Industry
	stored.Difficulty = cs.Difficulty
	return cloneCaseStudy(stored), nil
}

func (r *stubCaseStudyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.studies[id]; !ok {
		return domain.ErrContentNotFound
	}
	delete(r.studies, id)
	return nil
}

func (r *stubCaseStudyRepo) DeleteByAuthor(_ context.Context, authorID string) error {
	for id, cs := range r.studies {
		if cs.AuthorID == authorID {
			delete(r.studies, id)
		}
	}
	return nil
}

func (r *stubCaseStudyRepo) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for _, cs := range r.studies {
		if cs.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *stubCaseStudyRepo) List(_ context.Context, filter ports.ListContentFilter) ([]*domain.CaseStudy, int64, error) {
	var matched []*domain.CaseStudy
	for _, cs := range r.studies {
		if filter.Status != "" && cs.Status != filter.Status {
			continue
		}
		if filter.AuthorID != "" && cs.AuthorID != filter.AuthorID {
			continue
		}
		if filter.Category != "" && cs.Category != filter.Category {
			continue
		}
		matched = append(matched, cloneCaseStudy(cs))
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubCaseStudyRepo) IncrementCounter(_ context.Context, id, counter string) (int64, error) {
	cs, ok := r.studies[id]
	if !ok {
		return 0, domain.ErrContentNotFound
	}
	switch counter {
	case domain.CounterViews:
		cs.Views++
		return cs.Views, nil
	case domain.CounterLikes:
		cs.Likes++
		return cs.Likes, nil
	case domain.CounterShares:
		cs.Shares++
		return cs.Shares, nil
	case domain.CounterBookmarks:
		cs.Bookmarks++
		return cs.Bookmarks, nil
	case domain.CounterDownloads:
		cs.Downloads++
		return cs.Downloads, nil
	}
	return 0, fmt.Errorf("unknown counter %q", counter)
}
