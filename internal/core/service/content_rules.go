package service

import (
	"fmt"
	"strings"

	"github.com/tanglome/content-api/internal/core/domain"
)

const (
	minTitleLen       = 5
	maxTitleLen       = 200
	minDescriptionLen = 10
	maxDescriptionLen = 500
	minContentLen     = 50
	maxTagLen         = 50

	defaultPageSize = 10
	maxPageSize     = 50
)

// validateArticleFields applies the shared constraints on the writable
// article fields, accumulating problems into ve.
func validateArticleFields(title, description, content string, ve *domain.ValidationError) {
	if l := len(strings.TrimSpace(title)); l < minTitleLen || l > maxTitleLen {
		ve.Add("title", fmt.Sprintf("title must be between %d and %d characters", minTitleLen, maxTitleLen))
	}
	if l := len(strings.TrimSpace(description)); l < minDescriptionLen || l > maxDescriptionLen {
		ve.Add("description", fmt.Sprintf("description must be between %d and %d characters", minDescriptionLen, maxDescriptionLen))
	}
	if len(strings.TrimSpace(content)) < minContentLen {
		ve.Add("content", fmt.Sprintf("content must be at least %d characters", minContentLen))
	}
}

// cleanTags trims whitespace and drops empty or oversized entries.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || len(t) > maxTagLen {
			continue
		}
		out = append(out, t)
	}
	return out
}

// normalizePage applies defaults and the page-size cap.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func validCaseStudyCategory(category string) bool {
	for _, c := range domain.CaseStudyCategories {
		if c == category {
			return true
		}
	}
	return false
}
