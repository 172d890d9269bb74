package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

// listQuery binds the query string shared by the list endpoints. Industry and
// difficulty are ignored for blogs.
type listQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Status     string `query:"status"`
	Tag        string `query:"tag"`
	Category   string `query:"category"`
	Industry   string `query:"industry"`
	Difficulty string `query:"difficulty"`
	Search     string `query:"search"`
	Sort       string `query:"sort"`
}

func (q listQuery) filter() ports.ListContentFilter {
	return ports.ListContentFilter{
		Status:     domain.ContentStatus(q.Status),
		Tag:        q.Tag,
		Category:   q.Category,
		Industry:   q.Industry,
		Difficulty: q.Difficulty,
		Search:     q.Search,
		Sort:       q.Sort,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}

type createBlogRequest struct {
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Content     string   `json:"content" validate:"required,min=50"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image"`
}

type updateBlogRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=5,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=10,max=500"`
	Content     *string  `json:"content" validate:"omitempty,min=50"`
	Tags        []string `json:"tags"`
	Status      *string  `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured    *bool    `json:"featured"`
	Image       *string  `json:"image"`
}

type createCaseStudyRequest struct {
	Title       string   `json:"title" validate:"required,min=5,max=200"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Content     string   `json:"content" validate:"required,min=50"`
	Category    string   `json:"category" validate:"required"`
	Industry    string   `json:"industry"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image"`
}

type updateCaseStudyRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=5,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=10,max=500"`
	Content     *string  `json:"content" validate:"omitempty,min=50"`
	Category    *string  `json:"category"`
	Industry    *string  `json:"industry"`
	Difficulty  *string  `json:"difficulty"`
	Tags        []string `json:"tags"`
	Status      *string  `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured    *bool    `json:"featured"`
	Image       *string  `json:"image"`
}

type blogResponse struct {
	Message string       `json:"message,omitempty"`
	Blog    *domain.Blog `json:"blog"`
}

type blogListResponse struct {
	Blogs      []*domain.Blog   `json:"blogs"`
	Pagination ports.Pagination `json:"pagination"`
}

type caseStudyResponse struct {
	Message   string            `json:"message,omitempty"`
	CaseStudy *domain.CaseStudy `json:"caseStudy"`
}

type caseStudyListResponse struct {
	CaseStudies []*domain.CaseStudy `json:"caseStudies"`
	Pagination  ports.Pagination    `json:"pagination"`
}

func statusPtr(s *string) *domain.ContentStatus {
	if s == nil {
		return nil
	}
	v := domain.ContentStatus(*s)
	return &v
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
