package enhance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/server/respond"
)

type enhanceRequest struct {
	Section *string `json:"section" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

type enhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
}

// Handler serves the enhancement endpoint.
type Handler struct {
	Enhancer Enhancer
}

// NewHandler constructs a Handler.
func NewHandler(enhancer Enhancer) *Handler {
	return &Handler{Enhancer: enhancer}
}

// RegisterRoutes attaches the enhancement route to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/ai-enhance", h.enhance)
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid enhancement request: "+err.Error())
		return
	}
	c.Set("section", normalizeSection(*req.Section))

	text, err := h.Enhancer.Enhance(c.Request.Context(), *req.Section, *req.Content)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Enhancement failed: "+err.Error())
		return
	}
	metrics.IncEnhancements()

	respond.OK(c, enhanceResponse{EnhancedContent: text})
}
