package service

import (
	"fmt"
	"time"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/enum"
	"github.com/marianotrogo/client-pos-ind/pkg/printer"
)

// PrinterService reports printer health and prints test tickets.
type PrinterService struct {
	printer     printer.Printer
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string) *PrinterService {
	return &PrinterService{printer: p, printerType: printerType}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "" && s.printerType != "null" && s.printerType != "none",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test ticket to the printer. The receipt is returned so
// the handler can show it as JSON when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: "PRUEBA DE IMPRESORA",
			Address:      "Direccion de prueba",
			Phone:        "0000-000000",
		},
		Number:     0,
		Date:       time.Now().Format("02/01/2006 15:04"),
		ClientName: "Consumidor Final",
		Operation:  "VENTA",
		Items: []entity.ReceiptItem{
			{Description: "Articulo de prueba", Size: "M", Quantity: 1, UnitPrice: 10.00},
			{Description: "Articulo devuelto", Size: "L", Quantity: -1, UnitPrice: 5.00, IsReturn: true},
		},
		Subtotal:    5.00,
		Total:       5.00,
		PaymentType: enum.PaymentCash,
		FooterText:  "Ticket de prueba",
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}
