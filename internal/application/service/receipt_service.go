package service

import (
	"context"
	"fmt"
	"log"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/internal/metrics"
	"github.com/marianotrogo/client-pos-ind/pkg/printer"
)

// ReceiptService composes printable tickets from submitted sales and the
// backend's business settings, and drives the thermal printer.
type ReceiptService struct {
	printer printer.Printer
	backend gateway.Backend
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(p printer.Printer, backend gateway.Backend) *ReceiptService {
	return &ReceiptService{printer: p, backend: backend}
}

// PrintSale renders the receipt for a recorded sale and sends it to the
// printer. A settings fetch failure falls back to default business info
// rather than blocking the print.
func (s *ReceiptService) PrintSale(ctx context.Context, token string, sale *entity.Sale) (*entity.Receipt, error) {
	settings, err := s.backend.GetSettings(ctx, token)
	if err != nil {
		log.Printf("settings fetch failed, printing with defaults: %v", err)
		settings = entity.DefaultBusinessSettings()
	}

	receipt := ComposeReceipt(sale, settings)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		metrics.ReceiptsPrinted.WithLabelValues("error").Inc()
		return receipt, fmt.Errorf("receipt print failed: %w", err)
	}
	metrics.ReceiptsPrinted.WithLabelValues("ok").Inc()

	return receipt, nil
}

// ComposeReceipt builds the receipt value object for a sale.
func ComposeReceipt(sale *entity.Sale, settings *entity.BusinessSettings) *entity.Receipt {
	clientName := "Consumidor Final"
	if sale.Client != nil && sale.Client.Name != "" {
		clientName = sale.Client.Name
	}

	operation := "VENTA"
	if sale.IsExchange {
		operation = "CAMBIO"
	}

	footer := settings.FooterText
	if footer == "" {
		footer = "Gracias por su compra!"
	}

	items := make([]entity.ReceiptItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		qty := it.Qty
		if it.IsReturn {
			qty = -qty
		}
		items = append(items, entity.ReceiptItem{
			Description: it.Description,
			Size:        it.Size,
			Quantity:    qty,
			UnitPrice:   it.Price,
			IsReturn:    it.IsReturn,
		})
	}

	return &entity.Receipt{
		Header: entity.ReceiptHeader{
			BusinessName: settings.BusinessName,
			Address:      settings.Address,
			Phone:        settings.Phone,
			HeaderText:   settings.HeaderText,
		},
		Number:       sale.Number,
		Date:         sale.CreatedAt.Format("02/01/2006 15:04"),
		ClientName:   clientName,
		Operation:    operation,
		Items:        items,
		Subtotal:     sale.Subtotal,
		DiscountPct:  sale.Discount,
		SurchargePct: sale.Surcharge,
		Total:        sale.Total,
		PaymentType:  sale.PaymentType,
		QRLink:       settings.QRLink,
		FooterText:   footer,
	}
}

// FormatReceipt converts a receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Business header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Tel: %s", r.Header.Phone)
	}
	if r.Header.HeaderText != "" {
		doc.Text(r.Header.HeaderText)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Sale info
	doc.KeyValue("Ticket:", fmt.Sprintf("%d", r.Number)).
		KeyValue("Fecha:", r.Date).
		KeyValue("Cliente:", r.ClientName).
		KeyValue("Operacion:", r.Operation)

	doc.Separator('-')

	// Items: returned lines print with a negative quantity.
	for _, item := range r.Items {
		name := item.Description
		if item.Size != "" {
			name = fmt.Sprintf("%s (%s)", item.Description, item.Size)
		}
		doc.ItemLine(item.Quantity, name, fmt.Sprintf("$%.2f", item.UnitPrice))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("$%.2f", r.Subtotal)).
		KeyValue("Descuento:", fmt.Sprintf("%.0f%%", r.DiscountPct)).
		KeyValue("Recargo:", fmt.Sprintf("%.0f%%", r.SurchargePct))

	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("$%.2f", r.Total)).
		SetBold(false).
		KeyValue("Forma de pago:", r.PaymentType.String())

	if r.QRLink != "" {
		doc.SetAlign(printer.AlignCenter).
			QRCode(r.QRLink).
			SetAlign(printer.AlignLeft)
	}

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(r.FooterText).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
