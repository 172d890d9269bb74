package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

func validCaseStudyInput(title string) ports.CreateCaseStudyInput {
	return ports.CreateCaseStudyInput{
		Title:       title,
		Description: "A description that is long enough to pass.",
		Content:     strings.Repeat("result ", 40),
		Category:    "web-apps",
		Industry:    "streaming",
		Difficulty:  "advanced",
	}
}

func TestCaseStudyService_Create(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	cs, err := svc.Create(context.Background(), author, validCaseStudyInput("Scaling A Streaming Platform"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cs.Slug != "scaling-a-streaming-platform" {
		t.Fatalf("unexpected slug: %q", cs.Slug)
	}
	if cs.Category != "web-apps" || cs.Industry != "streaming" || cs.Difficulty != "advanced" {
		t.Fatalf("classification fields not stored: %+v", cs)
	}
}

func TestCaseStudyService_Create_InvalidCategory(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	input := validCaseStudyInput("Category Must Be Known")
	input.Category = "blockchain"

	_, err := svc.Create(context.Background(), author, input)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "category" {
		t.Fatalf("expected a single category error, got %v", ve.Fields)
	}
}

func TestCaseStudyService_Update_CategoryChecked(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	created, _ := svc.Create(context.Background(), author, validCaseStudyInput("Valid Then Invalid"))

	bad := "made-up"
	if _, err := svc.Update(context.Background(), author, created.ID, ports.UpdateCaseStudyInput{Category: &bad}); err == nil {
		t.Fatalf("expected error for invalid category on update")
	}

	good := "mobile-apps"
	updated, err := svc.Update(context.Background(), author, created.ID, ports.UpdateCaseStudyInput{Category: &good})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Category != "mobile-apps" {
		t.Fatalf("category not applied: %q", updated.Category)
	}
}

func TestCaseStudyService_Update_KeepsConcurrentDownloads(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	created, _ := svc.Create(context.Background(), author, validCaseStudyInput("Popular Case Study"))

	repo.beforeUpdate = func() {
		if _, err := repo.IncrementCounter(context.Background(), created.ID, domain.CounterDownloads); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}

	industry := "fintech"
	updated, err := svc.Update(context.Background(), author, created.ID, ports.UpdateCaseStudyInput{Industry: &industry})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Downloads != 1 {
		t.Fatalf("expected the interleaved download to survive, got downloads=%d", updated.Downloads)
	}
	if updated.Industry != "fintech" {
		t.Fatalf("industry not applied: %q", updated.Industry)
	}
}

func TestCaseStudyService_AddEngagement_Downloads(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	created, _ := svc.Create(context.Background(), author, validCaseStudyInput("Downloadable Case Study"))

	n, err := svc.AddEngagement(context.Background(), created.ID, domain.CounterDownloads)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected download count 1, got %d", n)
	}

	if _, err := svc.AddEngagement(context.Background(), created.ID, "views"); err == nil {
		t.Fatalf("views must not be a public engagement action")
	}
}

func TestCaseStudyService_ListFiltersByCategory(t *testing.T) {
	repo := newStubCaseStudyRepo()
	svc := NewCaseStudyService(repo, testLogger)

	_, _ = svc.Create(context.Background(), author, validCaseStudyInput("First Web App Story"))
	mobile := validCaseStudyInput("A Mobile App Story")
	mobile.Category = "mobile-apps"
	_, _ = svc.Create(context.Background(), author, mobile)

	result, err := svc.List(context.Background(), ports.ListContentFilter{Category: "mobile-apps"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].Category != "mobile-apps" {
		t.Fatalf("expected only the mobile-apps study, got %d items", len(result.Items))
	}
}
