package coverletters

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
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

// NewHandler constructs a Handler.
func NewHandler(svc *Service, pdf render.PDFRenderer) *Handler {
	return &Handler{Svc: svc, PDF: pdf}
}

// RegisterRoutes attaches cover letter routes under the owning resume.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/cover-letter/generate", h.generate)
	rg.GET("/resumes/:id/cover-letter", h.get)
	rg.GET("/resumes/:id/cover-letter/preview", h.preview)
	rg.GET("/resumes/:id/cover-letter/export", h.export)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	l, err := h.Svc.Generate(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(l))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	l, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(l))
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	rec, err := h.Svc.Resumes.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}
	l, err := h.Svc.Repo.GetByResume(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}

	tpl := templates.Lookup(c.Query("template"))
	html, err := render.CoverLetterPreview(rec.Content, l.Content, tpl)
	if err != nil {
		respondRenderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	if h.PDF == nil {
		respond.Error(c, http.StatusServiceUnavailable, "pdf_unavailable", "PDF export is not configured", nil)
		return
	}

	rec, err := h.Svc.Resumes.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}
	l, err := h.Svc.Repo.GetByResume(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}

	tpl := templates.Lookup(c.Query("template"))
	html, err := render.CoverLetterPrintHTML(rec.Content, l.Content, tpl)
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
	c.Header("Content-Disposition", `attachment; filename="`+resumes.ExportFileName(rec.Content.FullName, "CoverLetter")+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cover letter not found", nil)
	case errors.Is(err, llm.ErrRateLimited):
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "Rate limit exceeded, please try again later.", nil)
	case errors.Is(err, llm.ErrPaymentRequired):
		respond.Error(c, http.StatusPaymentRequired, "payment_required", "Generation credits exhausted.", nil)
	case errors.Is(err, llm.ErrParse):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "model returned an unusable response", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "generation is not configured", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, resumes.ErrInvalidInput):
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
	respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render cover letter", nil)
}
