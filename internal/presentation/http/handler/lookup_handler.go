package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marianotrogo/client-pos-ind/internal/application/service"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
)

// LookupHandler proxies product and client searches to the backend.
type LookupHandler struct {
	lookupService *service.LookupService
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(lookupService *service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// SearchProducts searches products by code or name. The session query
// parameter ties the search to a sale session so stale responses can be
// discarded.
func (h *LookupHandler) SearchProducts(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Query("session"))
	if err != nil {
		response.BadRequest(c, "A valid session query parameter is required")
		return
	}

	products, err := h.lookupService.SearchProducts(c.Request.Context(), sessionID, GetAuthToken(c), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved", products)
}

// SearchClients searches clients by name or DNI.
func (h *LookupHandler) SearchClients(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Query("session"))
	if err != nil {
		response.BadRequest(c, "A valid session query parameter is required")
		return
	}

	clients, err := h.lookupService.SearchClients(c.Request.Context(), sessionID, GetAuthToken(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Clients retrieved", clients)
}
