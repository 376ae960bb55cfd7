package resumes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/render"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
	PDF render.PDFRenderer
}

// NewHandler constructs a Handler. pdf may be nil when no PDF backend is
// configured; export then responds 503.
func NewHandler(svc *Service, pdf render.PDFRenderer) *Handler {
	return &Handler{Svc: svc, PDF: pdf}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/generate", h.generate)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/search", h.search)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.PATCH("/resumes/:id/content", h.applyEdits)
	rg.GET("/resumes/:id/preview", h.preview)
	rg.GET("/resumes/:id/export", h.export)
}

type generateRequest struct {
	Bio string `json:"bio"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Bio) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "bio is required", nil)
		return
	}

	rec, err := h.Svc.Generate(c.Request.Context(), userID, req.Bio)
	if err != nil {
		respondGenerationError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := parseIntQuery(c, "limit", 20)
	offset := parseIntQuery(c, "offset", 0)

	recs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	resp := make([]SummaryResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toSummary(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) search(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "q is required", nil)
		return
	}
	limit := parseIntQuery(c, "limit", 20)

	recs, err := h.Svc.FindByContent(c.Request.Context(), userID, query, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "search failed", nil)
		return
	}

	resp := make([]SummaryResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toSummary(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

type updateRequest struct {
	Title   *string          `json:"title"`
	Content *resume.Document `json:"content"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Title == nil && req.Content == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "nothing to update", nil)
		return
	}

	rec, err := h.Svc.Save(c.Request.Context(), userID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondLookupError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type applyEditsRequest struct {
	Edits []Edit `json:"edits"`
}

func (h *Handler) applyEdits(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req applyEditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.Edits) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "edits is required", nil)
		return
	}

	rec, err := h.Svc.ApplyEdits(c.Request.Context(), userID, c.Param("id"), req.Edits)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrBadPath), errors.Is(err, resume.ErrBadValue):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respondLookupError(c, err)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(rec))
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	tpl := templates.Lookup(c.Query("template"))
	html, err := render.Preview(rec.Content, tpl)
	if err != nil {
		respondRenderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if h.PDF == nil {
		respond.Error(c, http.StatusServiceUnavailable, "pdf_unavailable", "PDF export is not configured", nil)
		return
	}

	rec, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}

	tpl := templates.Lookup(c.Query("template"))
	html, err := render.PrintHTML(rec.Content, tpl)
	if err != nil {
		respondRenderError(c, err)
		return
	}

	pdf, err := h.PDF.RenderHTMLToPDF(c.Request.Context(), html)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "pdf_failed", "failed to render PDF", nil)
		return
	}

	metrics.IncPDFExport()
	c.Header("Content-Disposition", `attachment; filename="`+ExportFileName(rec.Content.FullName, "Resume")+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportFileName builds the download name for an exported document, e.g.
// "Jane_Doe_Resume.pdf".
func ExportFileName(fullName, kind string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return kind + ".pdf"
	}
	return strings.ReplaceAll(name, " ", "_") + "_" + kind + ".pdf"
}

func respondGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrRateLimited):
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded, please try again later.", nil)
	case errors.Is(err, llm.ErrPaymentRequired):
		respond.Error(c, http.StatusPaymentRequired, "payment_required", "Generation credits exhausted.", nil)
	case errors.Is(err, llm.ErrParse):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "model returned an unusable response", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "generation is not configured", nil)
	default:
		respond.Error(c, http.StatusBadGateway, "generation_failed", "generation failed", nil)
	}
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
}

func respondRenderError(c *gin.Context, err error) {
	if errors.Is(err, render.ErrPrecondition) {
		respond.Error(c, http.StatusUnprocessableEntity, "render_precondition", err.Error(), nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
}

func parseIntQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
