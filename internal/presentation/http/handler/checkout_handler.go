package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marianotrogo/client-pos-ind/internal/application/service"
	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/enum"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/request"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
)

// CheckoutHandler handles sale confirmation requests.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Confirm validates the settlement against the cart total and submits the
// sale. On success the session's cart is reset and, when requested, the
// receipt is printed.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session id")
		return
	}

	var req request.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	settlement := entity.Settlement{
		Kind:          settlementKind(req.Kind),
		Cash:          entity.ToCents(req.Cash),
		Digital:       entity.ToCents(req.Digital),
		DigitalMethod: enum.PaymentMethod(req.DigitalMethod),
	}

	result, err := h.checkoutService.Confirm(c.Request.Context(), id, GetAuthToken(c), settlement, req.Print)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded", result)
}

func settlementKind(kind string) enum.SettlementKind {
	switch kind {
	case "MIXED":
		return enum.SettlementMixed
	case "STORE_CREDIT":
		return enum.SettlementStoreCredit
	default:
		return enum.SettlementSingle
	}
}
