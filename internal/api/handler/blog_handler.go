package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/api/metrics"
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

type BlogHandler struct {
	blogService ports.BlogService
}

func NewBlogHandler(blogService ports.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List returns a page of blog posts.
//
// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 50)"
// @Param        tag     query  string  false  "Filter by tag"
// @Param        search  query  string  false  "Full-text search"
// @Param        sort    query  string  false  "newest|oldest|popular|featured"
// @Success      200  {object}  blogListResponse
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.blogService.List(c.Request().Context(), q.filter())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogListResponse{
		Blogs:      result.Items,
		Pagination: result.Pagination,
	})
}

// GetBySlug returns one published post and counts the view.
//
// @Summary      Get a blog post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug  path  string  true  "Post slug"
// @Success      200  {object}  blogResponse
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	blog, err := h.blogService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	metrics.ContentViewsTotal.WithLabelValues("blog").Inc()
	return c.JSON(http.StatusOK, blogResponse{Blog: blog})
}

// Create stores a new blog post authored by the caller.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Post body"
// @Success      201   {object}  blogResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	blog, err := h.blogService.Create(c.Request().Context(), callerFrom(c), ports.CreateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		Status:      domain.ContentStatus(req.Status),
		Featured:    req.Featured,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("blog", string(blog.Status)).Inc()
	return c.JSON(http.StatusCreated, blogResponse{Message: "blog created", Blog: blog})
}

// Update applies a partial update to a post the caller owns (or is admin for).
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updateBlogRequest  true  "Fields to change"
// @Success      200   {object}  blogResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	blog, err := h.blogService.Update(c.Request().Context(), callerFrom(c), c.Param("id"), ports.UpdateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Tags:        req.Tags,
		Status:      statusPtr(req.Status),
		Featured:    req.Featured,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogResponse{Message: "blog updated", Blog: blog})
}

// Delete removes a post the caller owns (or is admin for).
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogService.Delete(c.Request().Context(), callerFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "blog deleted"})
}

// Like increments the like counter.
//
// @Summary      Like a blog post
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/like [post]
func (h *BlogHandler) Like(c echo.Context) error {
	return h.engage(c, domain.CounterLikes)
}

// Bookmark increments the bookmark counter.
//
// @Summary      Bookmark a blog post
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/bookmark [post]
func (h *BlogHandler) Bookmark(c echo.Context) error {
	return h.engage(c, domain.CounterBookmarks)
}

// Share increments the share counter.
//
// @Summary      Share a blog post
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id}/share [post]
func (h *BlogHandler) Share(c echo.Context) error {
	return h.engage(c, domain.CounterShares)
}

func (h *BlogHandler) engage(c echo.Context, counter string) error {
	value, err := h.blogService.AddEngagement(c.Request().Context(), c.Param("id"), counter)
	if err != nil {
		return err
	}

	metrics.EngagementTotal.WithLabelValues("blog", counter).Inc()
	return c.JSON(http.StatusOK, map[string]int64{counter: value})
}
