package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6631501193-blip/tracking-server/internal/server/http/dto"
)

// SystemHandler exposes bootstrap initialization.
type SystemHandler struct {
	facade BootstrapFacade
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade BootstrapFacade) *SystemHandler {
	return &SystemHandler{facade: facade}
}

// Init handles GET /init. Repeated invocations are harmless: seeding is
// skipped once the demo accounts exist.
func (h *SystemHandler) Init(c *gin.Context) {
	if err := h.facade.Bootstrap(c.Request.Context()); err != nil {
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "database initialized successfully"})
}
