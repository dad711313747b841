package handlers

import (
	"github.com/gin-gonic/gin"

	"vitrine/internal/domain/options"
)

// OptionsHandler serves the filter option lists.
type OptionsHandler struct {
	*BaseHandler
	service *options.Service
}

// NewOptionsHandler creates a filter options handler.
func NewOptionsHandler(service *options.Service) *OptionsHandler {
	return &OptionsHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List returns every option list. Sections that failed to load are reported
// in the degraded field; the response fails outright only when nothing
// loaded at all.
// GET /api/v1/options
func (h *OptionsHandler) List(c *gin.Context) {
	opts, err := h.service.Load(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, opts)
}
