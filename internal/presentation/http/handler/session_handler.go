package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marianotrogo/client-pos-ind/internal/application/service"
	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/request"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
)

// SessionHandler handles sale-session and cart HTTP requests.
type SessionHandler struct {
	cartService *service.CartService
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(cartService *service.CartService) *SessionHandler {
	return &SessionHandler{cartService: cartService}
}

// Open creates a new sale session for the authenticated cashier.
func (h *SessionHandler) Open(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	view := h.cartService.Open(userID)
	response.Created(c, "Sale session opened", view)
}

// View returns the composed cart state with fresh aggregates.
func (h *SessionHandler) View(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	view, err := h.cartService.View(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale session retrieved", view)
}

// Discard deletes a sale session without submitting it.
func (h *SessionHandler) Discard(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	h.cartService.Discard(id)
	response.NoContent(c)
}

// AddLine adds a product variant to the cart; an existing variant has its
// quantity incremented instead.
func (h *SessionHandler) AddLine(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	var req request.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.cartService.AddLine(id, service.AddLineInput{
		ProductID:   req.ProductID,
		VariantID:   req.VariantID,
		Code:        req.Code,
		Description: req.Description,
		Size:        req.Size,
		UnitPrice:   entity.ToCents(req.Price),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line added", view)
}

// SetQuantity replaces a line's quantity.
func (h *SessionHandler) SetQuantity(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid variant id")
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.cartService.SetQuantity(id, variantID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", view)
}

// ToggleReturn flips a line's return flag (exchange mode).
func (h *SessionHandler) ToggleReturn(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid variant id")
		return
	}

	view, err := h.cartService.ToggleReturn(id, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Return flag toggled", view)
}

// RemoveLine deletes a line from the cart.
func (h *SessionHandler) RemoveLine(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	variantID, err := strconv.ParseInt(c.Param("variantId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid variant id")
		return
	}

	view, err := h.cartService.RemoveLine(id, variantID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line removed", view)
}

// SetAdjustments sets discount and surcharge percentages.
func (h *SessionHandler) SetAdjustments(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	var req request.AdjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.cartService.SetAdjustments(id, req.DiscountPct, req.SurchargePct)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Adjustments updated", view)
}

// SelectClient attaches a client to the session, or clears it when the
// body carries a null client.
func (h *SessionHandler) SelectClient(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	var req request.SelectClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var client *entity.Client
	if req.Client != nil {
		client = &entity.Client{
			ID:      req.Client.ID,
			Name:    req.Client.Name,
			DNI:     req.Client.DNI,
			Balance: entity.ToCents(req.Client.Balance),
		}
	}

	view, err := h.cartService.SelectClient(id, client)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client updated", view)
}
