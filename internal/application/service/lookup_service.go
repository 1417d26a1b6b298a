package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/session"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

// MinQueryLength is the minimum search input length; shorter queries return
// no results without hitting the backend.
const MinQueryLength = 2

// LookupService proxies product and client searches to the backend. Each
// search is tagged with a sequence number kept per session and per search
// box: when responses of one box resolve out of order, the stale one is
// discarded instead of overwriting a newer result. The product and client
// boxes are sequenced independently.
type LookupService struct {
	sessions *session.Store
	backend  gateway.Backend
}

// NewLookupService creates a new lookup service.
func NewLookupService(sessions *session.Store, backend gateway.Backend) *LookupService {
	return &LookupService{sessions: sessions, backend: backend}
}

// SearchProducts looks up products by code or name for a sale session.
func (s *LookupService) SearchProducts(ctx context.Context, sessionID uuid.UUID, token, query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []entity.Product{}, nil
	}

	seq, err := s.sessions.NextSearchSeq(sessionID, session.LookupProducts)
	if err != nil {
		return nil, err
	}

	products, err := s.backend.SearchProducts(ctx, token, query)
	if err != nil {
		return nil, err
	}

	if !s.sessions.IsLatestSearch(sessionID, session.LookupProducts, seq) {
		return nil, apperror.ErrSearchSuperseded
	}
	return products, nil
}

// SearchClients looks up clients by name or DNI for a sale session.
func (s *LookupService) SearchClients(ctx context.Context, sessionID uuid.UUID, token, query string) ([]entity.Client, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return []entity.Client{}, nil
	}

	seq, err := s.sessions.NextSearchSeq(sessionID, session.LookupClients)
	if err != nil {
		return nil, err
	}

	clients, err := s.backend.SearchClients(ctx, token, query)
	if err != nil {
		return nil, err
	}

	if !s.sessions.IsLatestSearch(sessionID, session.LookupClients, seq) {
		return nil, apperror.ErrSearchSuperseded
	}
	return clients, nil
}
