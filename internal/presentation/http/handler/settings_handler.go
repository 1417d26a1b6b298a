package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
)

// SettingsHandler exposes the backend's business settings to terminal UIs.
type SettingsHandler struct {
	backend gateway.Backend
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(backend gateway.Backend) *SettingsHandler {
	return &SettingsHandler{backend: backend}
}

// Get fetches the business settings, falling back to defaults when the
// backend is unreachable so receipt previews keep working.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.backend.GetSettings(c.Request.Context(), GetAuthToken(c))
	if err != nil {
		log.Printf("settings fetch failed, serving defaults: %v", err)
		settings = entity.DefaultBusinessSettings()
	}
	response.OK(c, "Settings retrieved", settings)
}
