// Package handlers provides HTTP request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"vitrine/internal/domain/catalog"
	"vitrine/internal/infrastructure/http/v1/dto"
	"vitrine/internal/infrastructure/storage/postgres"
)

// CatalogHandler exposes catalog generation over HTTP.
type CatalogHandler struct {
	*BaseHandler
	service *catalog.Service
	runlog  *postgres.RunLog
}

// NewCatalogHandler creates a catalog handler. runlog may be nil; the runs
// endpoint then answers with an empty list.
func NewCatalogHandler(service *catalog.Service, runlog *postgres.RunLog) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
		runlog:      runlog,
	}
}

// Generate runs a catalog generation for the posted filter state.
// POST /api/v1/catalog/generate
func (h *CatalogHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Generate(c.Request.Context(), req.ToSnapshot())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromResult(result))
}

// Status reports the generation state machine.
// GET /api/v1/catalog/status
func (h *CatalogHandler) Status(c *gin.Context) {
	h.OK(c, h.service.Status())
}

// Runs lists the most recent generation runs, newest first.
// GET /api/v1/catalog/runs
func (h *CatalogHandler) Runs(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if h.runlog == nil {
		h.OK(c, dto.RunListResponse{Runs: []dto.RunResponse{}})
		return
	}

	entries, err := h.runlog.Recent(c.Request.Context(), limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	out := dto.RunListResponse{Runs: make([]dto.RunResponse, 0, len(entries))}
	for _, e := range entries {
		out.Runs = append(out.Runs, dto.FromRunLogEntry(e))
	}
	h.OK(c, out)
}
