package handler

import (
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

type ownContentQuery struct {
	Type   string `query:"type"`
	Status string `query:"status"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type ownContentResponse struct {
	Blogs       []*domain.Blog      `json:"blogs"`
	CaseStudies []*domain.CaseStudy `json:"caseStudies"`
	Pagination  ports.Pagination    `json:"pagination"`
}

// emptyPageResponse backs the bookmark and reading-history listings. Per-user
// collections are not persisted, so these pages are always empty.
type emptyPageResponse struct {
	Items      []any            `json:"items"`
	Pagination ports.Pagination `json:"pagination"`
}

type listUsersQuery struct {
	Role   string `query:"role"`
	Search string `query:"search"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type userListResponse struct {
	Users      []*domain.User   `json:"users"`
	Pagination ports.Pagination `json:"pagination"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user author admin"`
}

type userResponse struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
}
