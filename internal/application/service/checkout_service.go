package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/session"
	"github.com/marianotrogo/client-pos-ind/internal/metrics"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

// CheckoutService validates a settlement against the composed cart and
// submits the sale to the backend. Validation happens only at confirmation
// time; nothing is checked on intermediate keystrokes.
type CheckoutService struct {
	sessions *session.Store
	backend  gateway.Backend
	receipts *ReceiptService
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(sessions *session.Store, backend gateway.Backend, receipts *ReceiptService) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		backend:  backend,
		receipts: receipts,
	}
}

// ConfirmResult is the outcome of a confirmed sale.
type ConfirmResult struct {
	Sale    *entity.Sale    `json:"sale"`
	Receipt *entity.Receipt `json:"receipt,omitempty"`
}

// Confirm reconciles the settlement, submits the sale, and on success
// resets the session's cart. When print is requested the receipt is
// rendered and sent to the printer after the sale posts; a printer fault
// never undoes a recorded sale.
//
// On any failure before or during submission the cart, adjustments and
// client selection are left untouched so the cashier can correct and
// retry. There is no automatic retry.
func (s *CheckoutService) Confirm(ctx context.Context, sessionID uuid.UUID, token string, settlement entity.Settlement, print bool) (*ConfirmResult, error) {
	if err := s.sessions.BeginSubmission(sessionID); err != nil {
		return nil, err
	}
	defer s.sessions.EndSubmission(sessionID)

	// Mutations are rejected while the guard is held, so this copy is
	// exactly the cart that will be submitted and reset.
	sess, err := s.sessions.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}

	if len(sess.Lines) == 0 {
		metrics.Submissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, apperror.ErrEmptyCart
	}

	totals := entity.ComputeTotals(sess.Lines, sess.DiscountPct, sess.SurchargePct)

	plan, err := settlement.Reconcile(totals.Total, sess.Client != nil)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	sub := buildSubmission(sess, totals, plan)

	sale, err := s.backend.CreateSale(ctx, token, sub)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}
	metrics.Submissions.WithLabelValues(metrics.OutcomeSuccess).Inc()

	// Reset only after the backend accepted the sale.
	s.sessions.ResetCart(sessionID)

	result := &ConfirmResult{Sale: sale}

	if print {
		receipt, err := s.receipts.PrintSale(ctx, token, sale)
		if err != nil {
			log.Printf("receipt print failed for sale %d: %v", sale.Number, err)
		}
		result.Receipt = receipt
	}

	return result, nil
}

func buildSubmission(sess *session.Session, totals entity.CartTotals, plan *entity.PaymentPlan) *gateway.SaleSubmission {
	items := make([]entity.SaleItem, 0, len(sess.Lines))
	for _, li := range sess.Lines {
		items = append(items, entity.SaleItem{
			ProductID:   li.ProductID,
			VariantID:   li.VariantID,
			Code:        li.Code,
			Description: li.Description,
			Size:        li.Size,
			Price:       entity.FromCents(li.UnitPrice),
			Qty:         li.Quantity,
			Subtotal:    entity.FromCents(li.Subtotal()),
			IsReturn:    li.IsReturn,
		})
	}

	var clientID *int64
	if sess.Client != nil {
		id := sess.Client.ID
		clientID = &id
	}

	return &gateway.SaleSubmission{
		ClientID:       clientID,
		UserID:         sess.UserID,
		Subtotal:       entity.FromCents(totals.Subtotal),
		Discount:       totals.DiscountPct,
		Surcharge:      totals.SurchargePct,
		Total:          entity.FromCents(totals.Total),
		PaymentType:    plan.Type.String(),
		PaymentDetails: plan.Details,
		Items:          items,
		IsExchange:     totals.IsExchange,
	}
}
