package jobsearches

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job search routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job-searches", h.create)
	rg.GET("/job-searches", h.list)
	rg.DELETE("/job-searches/:id", h.remove)
}

type createRequest struct {
	JobTitle string `json:"jobTitle"`
	Location string `json:"location"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	search, err := h.Svc.Save(c.Request.Context(), userID, req.JobTitle, req.Location)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "jobTitle is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save search", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(search))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	searches, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list searches", nil)
		return
	}

	resp := make([]Response, 0, len(searches))
	for _, s := range searches {
		resp = append(resp, toResponse(s))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "job search not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete search", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
