package extract

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/util"
)

// Handler serves the parse endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches the parse route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parse)
}

type parseRequest struct {
	FileData string `json:"fileData"`
	FileName string `json:"fileName"`
}

type parseResponse struct {
	Text     string `json:"text"`
	FileName string `json:"fileName,omitempty"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	fileName := ""
	if req.FileName != "" {
		cleaned, err := util.SanitizeFileName(req.FileName)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
			return
		}
		fileName = cleaned
	}

	text, err := FromBase64(req.FileData)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "fileData is required", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	respond.JSON(c, http.StatusOK, parseResponse{Text: text, FileName: fileName})
}
