package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/api/metrics"
	"github.com/tanglome/content-api/internal/core/domain"
	"github.com/tanglome/content-api/internal/core/ports"
)

type CaseStudyHandler struct {
	caseStudyService ports.CaseStudyService
}

func NewCaseStudyHandler(caseStudyService ports.CaseStudyService) *CaseStudyHandler {
	return &CaseStudyHandler{caseStudyService: caseStudyService}
}

// List returns a page of case studies.
//
// @Summary      List case studies
// @Tags         case-studies
// @Produce      json
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size (max 50)"
// @Param        category    query  string  false  "Filter by category"
// @Param        industry    query  string  false  "Filter by industry"
// @Param        difficulty  query  string  false  "Filter by difficulty"
// @Param        search      query  string  false  "Full-text search"
// @Param        sort        query  string  false  "newest|oldest|popular|featured"
// @Success      200  {object}  caseStudyListResponse
// @Router       /case-studies [get]
func (h *CaseStudyHandler) List(c echo.Context) error {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	result, err := h.caseStudyService.List(c.Request().Context(), q.filter())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, caseStudyListResponse{
		CaseStudies: result.Items,
		Pagination:  result.Pagination,
	})
}

// GetBySlug returns one published case study and counts the view.
//
// @Summary      Get a case study by slug
// @Tags         case-studies
// @Produce      json
// @Param        slug  path  string  true  "Case study slug"
// @Success      200  {object}  caseStudyResponse
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{slug} [get]
func (h *CaseStudyHandler) GetBySlug(c echo.Context) error {
	cs, err := h.caseStudyService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	metrics.ContentViewsTotal.WithLabelValues("case_study").Inc()
	return c.JSON(http.StatusOK, caseStudyResponse{CaseStudy: cs})
}

// Create stores a new case study authored by the caller.
//
// @Summary      Create a case study
// @Tags         case-studies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCaseStudyRequest  true  "Case study body"
// @Success      201   {object}  caseStudyResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /case-studies [post]
func (h *CaseStudyHandler) Create(c echo.Context) error {
	var req createCaseStudyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cs, err := h.caseStudyService.Create(c.Request().Context(), callerFrom(c), ports.CreateCaseStudyInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Industry:    req.Industry,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Status:      domain.ContentStatus(req.Status),
		Featured:    req.Featured,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("case_study", string(cs.Status)).Inc()
	return c.JSON(http.StatusCreated, caseStudyResponse{Message: "case study created", CaseStudy: cs})
}

// Update applies a partial update to a case study the caller owns (or is
// admin for).
//
// @Summary      Update a case study
// @Tags         case-studies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Case study id"
// @Param        body  body      updateCaseStudyRequest  true  "Fields to change"
// @Success      200   {object}  caseStudyResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /case-studies/{id} [put]
func (h *CaseStudyHandler) Update(c echo.Context) error {
	var req updateCaseStudyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cs, err := h.caseStudyService.Update(c.Request().Context(), callerFrom(c), c.Param("id"), ports.UpdateCaseStudyInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Industry:    req.Industry,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Status:      statusPtr(req.Status),
		Featured:    req.Featured,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, caseStudyResponse{Message: "case study updated", CaseStudy: cs})
}

// Delete removes a case study the caller owns (or is admin for).
//
// @Summary      Delete a case study
// @Tags         case-studies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Case study id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{id} [delete]
func (h *CaseStudyHandler) Delete(c echo.Context) error {
	if err := h.caseStudyService.Delete(c.Request().Context(), callerFrom(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "case study deleted"})
}

// Like increments the like counter.
//
// @Summary      Like a case study
// @Tags         case-studies
// @Produce      json
// @Param        id  path  string  true  "Case study id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{id}/like [post]
func (h *CaseStudyHandler) Like(c echo.Context) error {
	return h.engage(c, domain.CounterLikes)
}

// Bookmark increments the bookmark counter.
//
// @Summary      Bookmark a case study
// @Tags         case-studies
// @Produce      json
// @Param        id  path  string  true  "Case study id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{id}/bookmark [post]
func (h *CaseStudyHandler) Bookmark(c echo.Context) error {
	return h.engage(c, domain.CounterBookmarks)
}

// Share increments the share counter.
//
// @Summary      Share a case study
// @Tags         case-studies
// @Produce      json
// @Param        id  path  string  true  "Case study id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{id}/share [post]
func (h *CaseStudyHandler) Share(c echo.Context) error {
	return h.engage(c, domain.CounterShares)
}

// Download increments the download counter, the case-study only action.
//
// @Summary      Record a case study download
// @Tags         case-studies
// @Produce      json
// @Param        id  path  string  true  "Case study id"
// @Success      200  {object}  map[string]int64
// @Failure      404  {object}  map[string]string
// @Router       /case-studies/{id}/download [post]
func (h *CaseStudyHandler) Download(c echo.Context) error {
	return h.engage(c, domain.CounterDownloads)
}

func (h *CaseStudyHandler) engage(c echo.Context, counter string) error {
	value, err := h.caseStudyService.AddEngagement(c.Request().Context(), c.Param("id"), counter)
	if err != nil {
		return err
	}

	metrics.EngagementTotal.WithLabelValues("case_study", counter).Inc()
	return c.JSON(http.StatusOK, map[string]int64{counter: value})
}
