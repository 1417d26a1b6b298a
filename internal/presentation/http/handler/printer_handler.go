package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marianotrogo/client-pos-ind/internal/application/service"
	"github.com/marianotrogo/client-pos-ind/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer status and test printing.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status.
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// Test sends a test ticket to the printer. The rendered receipt is
// returned either way so a terminal without hardware can still verify the
// layout.
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Success(c, 200, "Printer unavailable, returning receipt data", receipt)
		return
	}
	response.OK(c, "Test ticket printed", receipt)
}
