package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/api/middleware"
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Profile returns the caller's profile.
//
// @Summary      Get profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Router       /users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, userResponse{User: middleware.CurrentUser(c)})
}

// UpdateProfile applies a partial profile update.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), callerFrom(c).ID, req.patch())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "profile updated", User: user})
}

// UpdateAvatar replaces the caller's avatar URL.
//
// @Summary      Update avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAvatarRequest  true  "Avatar URL"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/avatar [put]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	var req updateAvatarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.UpdateAvatar(c.Request().Context(), callerFrom(c).ID, req.Avatar)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "avatar updated", User: user})
}

// Stats returns the caller's authored-content counts and reading stats.
//
// @Summary      Get user stats
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UserStatsResult
// @Router       /users/stats [get]
func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.userService.Stats(c.Request().Context(), callerFrom(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Content lists the caller's own articles across all statuses.
//
// @Summary      List own content
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        type    query  string  false  "blogs|case-studies|all"
// @Param        status  query  string  false  "Filter by status"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 50)"
// @Success      200  {object}  ownContentResponse
// @Router       /users/content [get]
func (h *UserHandler) Content(c echo.Context) error {
	var q ownContentQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.userService.OwnContent(c.Request().Context(), callerFrom(c).ID, ports.OwnContentInput{
		Type:   q.Type,
		Status: domain.ContentStatus(q.Status),
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ownContentResponse{
		Blogs:       result.Blogs,
		CaseStudies: result.CaseStudies,
		Pagination:  result.Pagination,
	})
}

// Bookmarks lists the caller's bookmarked articles. Bookmark counters are
// aggregate only, so the page is always empty.
//
// @Summary      List bookmarks
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  emptyPageResponse
// @Router       /users/bookmarks [get]
func (h *UserHandler) Bookmarks(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyPageResponse{
		Items:      []any{},
		Pagination: ports.PageOf(1, 10, 0),
	})
}

// ReadingHistory lists the caller's recently read articles. View counters are
// aggregate only, so the page is always empty.
//
// @Summary      List reading history
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  emptyPageResponse
// @Router       /users/reading-history [get]
func (h *UserHandler) ReadingHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyPageResponse{
		Items:      []any{},
		Pagination: ports.PageOf(1, 10, 0),
	})
}

// DeleteAccount removes the caller's account and all their authored content.
//
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /users/account [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	if err := h.userService.DeleteAccount(c.Request().Context(), callerFrom(c).ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}

// ListUsers returns a page of accounts for administrators.
//
// @Summary      List users (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query  string  false  "Filter by role"
// @Param        search  query  string  false  "Partial match on name, email or company"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 50)"
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /users/admin/all [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	var q listUsersQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.userService.ListUsers(c.Request().Context(), callerFrom(c), ports.ListUsersFilter{
		Role:   q.Role,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Users:      result.Items,
		Pagination: result.Pagination,
	})
}

// UpdateRole changes another account's role. Admins cannot change their own.
//
// @Summary      Update a user's role (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/admin/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), callerFrom(c), c.Param("id"), req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "role updated", User: user})
}

// DeleteUser removes another account. Admins cannot delete their own this way.
//
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/admin/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userService.DeleteUser(c.Request().Context(), callerFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
