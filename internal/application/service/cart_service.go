package service

import (
	"github.com/google/uuid"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/session"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

// CartService maintains the line-item set of a sale session and exposes
// the derived aggregates. Every mutation is serialized through the session
// store, and totals are always recomputed from the lines.
type CartService struct {
	sessions *session.Store
}

// NewCartService creates a new cart service.
func NewCartService(sessions *session.Store) *CartService {
	return &CartService{sessions: sessions}
}

// Open creates a new sale session for a cashier.
func (s *CartService) Open(userID int64) *entity.CartView {
	sess := s.sessions.Create(userID)
	return &entity.CartView{
		SessionID: sess.ID.String(),
		Totals:    entity.ComputeTotals(nil, 0, 0),
	}
}

// Discard deletes a sale session, dropping its cart.
func (s *CartService) Discard(sessionID uuid.UUID) {
	s.sessions.Delete(sessionID)
}

// View returns the composed cart state with fresh aggregates. Views stay
// readable while a submission is in flight.
func (s *CartService) View(sessionID uuid.UUID) (*entity.CartView, error) {
	var view *entity.CartView
	err := s.sessions.Read(sessionID, func(sess *session.Session) error {
		view = viewOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddLineInput describes the product variant being added to the cart.
type AddLineInput struct {
	ProductID   int64
	VariantID   int64
	Code        string
	Description string
	Size        string
	UnitPrice   int64 // cents
}

// AddLine adds a variant to the cart. Adding a variant already present
// increments its quantity instead of duplicating the line, so variant IDs
// stay unique within the cart.
func (s *CartService) AddLine(sessionID uuid.UUID, in AddLineInput) (*entity.CartView, error) {
	return s.mutate(sessionID, func(sess *session.Session) error {
		if line := sess.FindLine(in.VariantID); line != nil {
			line.Quantity++
			return nil
		}
		sess.Lines = append(sess.Lines, entity.LineItem{
			VariantID:   in.VariantID,
			ProductID:   in.ProductID,
			Code:        in.Code,
			Description: in.Description,
			Size:        in.Size,
			UnitPrice:   in.UnitPrice,
			Quantity:    1,
		})
		return nil
	})
}

// RemoveLine deletes a line unconditionally.
func (s *CartService) RemoveLine(sessionID uuid.UUID, variantID int64) (*entity.CartView, error) {
	return s.mutate(sessionID, func(sess *session.Session) error {
		for i := range sess.Lines {
			if sess.Lines[i].VariantID == variantID {
				sess.Lines = append(sess.Lines[:i], sess.Lines[i+1:]...)
				return nil
			}
		}
		return apperror.ErrLineNotFound
	})
}

// SetQuantity replaces a line's quantity. Quantities below 1 clamp to 1
// rather than producing an empty or negative line.
func (s *CartService) SetQuantity(sessionID uuid.UUID, variantID int64, qty int) (*entity.CartView, error) {
	if qty < 1 {
		qty = 1
	}
	return s.mutate(sessionID, func(sess *session.Session) error {
		line := sess.FindLine(variantID)
		if line == nil {
			return apperror.ErrLineNotFound
		}
		line.Quantity = qty
		return nil
	})
}

// ToggleReturn flips a line's return flag. Quantity and unit price are
// untouched; the line's subtotal stays positive and the sign is applied
// at aggregation.
func (s *CartService) ToggleReturn(sessionID uuid.UUID, variantID int64) (*entity.CartView, error) {
	return s.mutate(sessionID, func(sess *session.Session) error {
		line := sess.FindLine(variantID)
		if line == nil {
			return apperror.ErrLineNotFound
		}
		line.IsReturn = !line.IsReturn
		return nil
	})
}

// SetAdjustments sets the discount and surcharge percentages, clamped to
// [0,100] at this boundary.
func (s *CartService) SetAdjustments(sessionID uuid.UUID, discountPct, surchargePct float64) (*entity.CartView, error) {
	return s.mutate(sessionID, func(sess *session.Session) error {
		sess.DiscountPct = entity.ClampPercent(discountPct)
		sess.SurchargePct = entity.ClampPercent(surchargePct)
		return nil
	})
}

// SelectClient attaches a client account to the session; nil clears it.
func (s *CartService) SelectClient(sessionID uuid.UUID, client *entity.Client) (*entity.CartView, error) {
	return s.mutate(sessionID, func(sess *session.Session) error {
		sess.Client = client
		return nil
	})
}

func (s *CartService) mutate(sessionID uuid.UUID, fn func(*session.Session) error) (*entity.CartView, error) {
	var view *entity.CartView
	err := s.sessions.Update(sessionID, func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		view = viewOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func viewOf(sess *session.Session) *entity.CartView {
	lines := make([]entity.LineItem, len(sess.Lines))
	copy(lines, sess.Lines)
	return &entity.CartView{
		SessionID: sess.ID.String(),
		Lines:     lines,
		Client:    sess.Client,
		Totals:    entity.ComputeTotals(sess.Lines, sess.DiscountPct, sess.SurchargePct),
	}
}
