package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, role string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func newUserFixture(t *testing.T) (*UserService, *stubUserRepo, *stubBlogRepo, *stubCaseStudyRepo) {
	t.Helper()
	users := newStubUserRepo()
	blogs := newStubBlogRepo()
	studies := newStubCaseStudyRepo()
	return NewUserService(users, blogs, studies, testLogger), users, blogs, studies
}

func TestUserService_Stats(t *testing.T) {
	svc, users, blogs, studies := newUserFixture(t)
	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleAuthor)

	blogSvc := NewBlogService(blogs, testLogger)
	csSvc := NewCaseStudyService(studies, testLogger)
	caller := ports.Caller{ID: owner.ID, Name: owner.Name, Role: owner.Role}

	for _, title := range []string{"First Authored Post", "Second Authored Post"} {
		if _, err := blogSvc.Create(context.Background(), caller, validBlogInput(title)); err != nil {
			t.Fatalf("create blog: %v", err)
		}
	}
	if _, err := csSvc.Create(context.Background(), caller, validCaseStudyInput("Single Case Study")); err != nil {
		t.Fatalf("create case study: %v", err)
	}

	stats, err := svc.Stats(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Content.Blogs != 2 || stats.Content.CaseStudies != 1 || stats.Content.Total != 3 {
		t.Fatalf("unexpected content stats: %+v", stats.Content)
	}
}

func TestUserService_OwnContent_IncludesDrafts(t *testing.T) {
	svc, users, blogs, _ := newUserFixture(t)
	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleAuthor)

	blogSvc := NewBlogService(blogs, testLogger)
	caller := ports.Caller{ID: owner.ID, Name: owner.Name, Role: owner.Role}

	draft := validBlogInput("A Draft In Progress")
	draft.Status = domain.StatusDraft
	if _, err := blogSvc.Create(context.Background(), caller, draft); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := blogSvc.Create(context.Background(), caller, validBlogInput("A Published Post")); err != nil {
		t.Fatalf("create published: %v", err)
	}

	result, err := svc.OwnContent(context.Background(), owner.ID, ports.OwnContentInput{Type: "blogs"})
	if err != nil {
		t.Fatalf("own content failed: %v", err)
	}
	if len(result.Blogs) != 2 {
		t.Fatalf("expected drafts included, got %d items", len(result.Blogs))
	}
	if len(result.CaseStudies) != 0 {
		t.Fatalf("case studies were not requested")
	}
	if result.Pagination.TotalItems != 2 {
		t.Fatalf("unexpected total: %+v", result.Pagination)
	}
}

func TestUserService_DeleteAccount_Cascades(t *testing.T) {
	svc, users, blogs, studies := newUserFixture(t)
	owner := seedUser(t, users, "Alice", "alice@example.com", domain.RoleAuthor)
	other := seedUser(t, users, "Bob", "bob@example.com", domain.RoleAuthor)

	blogSvc := NewBlogService(blogs, testLogger)
	csSvc := NewCaseStudyService(studies, testLogger)
	ownerCaller := ports.Caller{ID: owner.ID, Name: owner.Name, Role: owner.Role}
	otherCaller := ports.Caller{ID: other.ID, Name: other.Name, Role: other.Role}

	_, _ = blogSvc.Create(context.Background(), ownerCaller, validBlogInput("Owned Blog Post"))
	_, _ = csSvc.Create(context.Background(), ownerCaller, validCaseStudyInput("Owned Case Study"))
	kept, _ := blogSvc.Create(context.Background(), otherCaller, validBlogInput("Unrelated Blog Post"))

	if err := svc.DeleteAccount(context.Background(), owner.ID); err != nil {
		t.Fatalf("delete account failed: %v", err)
	}

	if _, err := users.FindByID(context.Background(), owner.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("account should be gone, got %v", err)
	}
	if n, _ := blogs.CountByAuthor(context.Background(), owner.ID); n != 0 {
		t.Fatalf("expected authored blogs removed, %d remain", n)
	}
	if n, _ := studies.CountByAuthor(context.Background(), owner.ID); n != 0 {
		t.Fatalf("expected authored case studies removed, %d remain", n)
	}
	if _, err := blogs.FindByID(context.Background(), kept.ID); err != nil {
		t.Fatalf("other author's content must survive: %v", err)
	}
}

func TestUserService_ListUsers_RequiresAdmin(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	adminUser := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)
	seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)

	nonAdmin := ports.Caller{ID: "x", Role: domain.RoleAuthor}
	if _, err := svc.ListUsers(context.Background(), nonAdmin, ports.ListUsersFilter{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	adminCaller := ports.Caller{ID: adminUser.ID, Role: domain.RoleAdmin}
	result, err := svc.ListUsers(context.Background(), adminCaller, ports.ListUsersFilter{})
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if result.Pagination.TotalItems != 2 {
		t.Fatalf("expected 2 users, got %d", result.Pagination.TotalItems)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	adminUser := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleUser)
	adminCaller := ports.Caller{ID: adminUser.ID, Role: domain.RoleAdmin}

	if _, err := svc.UpdateRole(context.Background(), adminCaller, target.ID, "superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}

	updated, err := svc.UpdateRole(context.Background(), adminCaller, target.ID, domain.RoleAuthor)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != domain.RoleAuthor {
		t.Fatalf("role not applied: %q", updated.Role)
	}
}

func TestUserService_AdminSelfProtection(t *testing.T) {
	svc, users, _, _ := newUserFixture(t)
	adminUser := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)
	adminCaller := ports.Caller{ID: adminUser.ID, Role: domain.RoleAdmin}

	if _, err := svc.UpdateRole(context.Background(), adminCaller, adminUser.ID, domain.RoleUser); !errors.Is(err, domain.ErrSelfAdminAction) {
		t.Fatalf("expected ErrSelfAdminAction on own role change, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), adminCaller, adminUser.ID); !errors.Is(err, domain.ErrSelfAdminAction) {
		t.Fatalf("expected ErrSelfAdminAction on own delete, got %v", err)
	}

	// The self-service path is still open to admins.
	if err := svc.DeleteAccount(context.Background(), adminUser.ID); err != nil {
		t.Fatalf("self-service delete failed: %v", err)
	}
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	svc, users, blogs, _ := newUserFixture(t)
	adminUser := seedUser(t, users, "Root", "root@example.com", domain.RoleAdmin)
	target := seedUser(t, users, "Alice", "alice@example.com", domain.RoleAuthor)

	blogSvc := NewBlogService(blogs, testLogger)
	_, _ = blogSvc.Create(context.Background(), ports.Caller{ID: target.ID, Name: target.Name, Role: target.Role}, validBlogInput("Target Authored Post"))

	adminCaller := ports.Caller{ID: adminUser.ID, Role: domain.RoleAdmin}
	if err := svc.DeleteUser(context.Background(), adminCaller, target.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if n, _ := blogs.CountByAuthor(context.Background(), target.ID); n != 0 {
		t.Fatalf("expected cascade, %d blogs remain", n)
	}
}
