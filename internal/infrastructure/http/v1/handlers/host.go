package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine/internal/core/apperror"
	"vitrine/internal/domain/host"
	"vitrine/internal/infrastructure/http/v1/dto"
)

// HostHandler exposes host-environment integration.
type HostHandler struct {
	*BaseHandler
	service *host.Service
}

// NewHostHandler creates a host integration handler.
func NewHostHandler(service *host.Service) *HostHandler {
	return &HostHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// LaunchFullScreen validates a full-screen launch against the posted
// environment probe. Outside the host this answers 200 with a warning
// payload instead of an error: the widget keeps running embedded.
// POST /api/v1/host/fullscreen
func (h *HostHandler) LaunchFullScreen(c *gin.Context) {
	var probe host.Probe
	if !h.BindJSON(c, &probe) {
		return
	}

	cfg, err := h.service.LaunchFullScreen(c.Request.Context(), probe)
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeEnvironmentMismatch {
			c.JSON(http.StatusOK, dto.WarningResponse{
				Warning: appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			})
			return
		}
		h.Error(c, err)
		return
	}

	h.OK(c, cfg)
}
