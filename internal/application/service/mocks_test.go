package service

import (
	"context"
	"testing"
	"time"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/internal/infrastructure/session"
)

func newTestSessionStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(time.Hour)
	t.Cleanup(store.Close)
	return store
}

// MockBackend implements gateway.Backend for testing
type MockBackend struct {
	Products    []entity.Product
	Clients     []entity.Client
	Sale        *entity.Sale
	Settings    *entity.BusinessSettings
	SearchErr   error
	SaleErr     error
	SettingsErr error

	// Captures
	LastQuery      string
	SaleCalls      int
	LastSubmission *gateway.SaleSubmission

	// OnSearch runs inside a search call, before returning. Tests use it
	// to simulate a newer request racing past this one.
	OnSearch func()

	// OnCreateSale runs inside CreateSale, before returning. Tests use it
	// to simulate cart activity while the submission is in flight.
	OnCreateSale func()
}

func (m *MockBackend) SearchProducts(_ context.Context, _ string, query string) ([]entity.Product, error) {
	m.LastQuery = query
	if m.OnSearch != nil {
		m.OnSearch()
	}
	return m.Products, m.SearchErr
}

func (m *MockBackend) SearchClients(_ context.Context, _ string, query string) ([]entity.Client, error) {
	m.LastQuery = query
	if m.OnSearch != nil {
		m.OnSearch()
	}
	return m.Clients, m.SearchErr
}

func (m *MockBackend) CreateSale(_ context.Context, _ string, sub *gateway.SaleSubmission) (*entity.Sale, error) {
	m.SaleCalls++
	m.LastSubmission = sub
	if m.OnCreateSale != nil {
		m.OnCreateSale()
	}
	return m.Sale, m.SaleErr
}

func (m *MockBackend) GetSettings(_ context.Context, _ string) (*entity.BusinessSettings, error) {
	return m.Settings, m.SettingsErr
}

// MockPrinter captures printed ESC/POS output
type MockPrinter struct {
	Printed [][]byte
	Err     error
}

func (m *MockPrinter) Print(data []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Printed = append(m.Printed, data)
	return nil
}

func (m *MockPrinter) Close() error { return nil }

func (m *MockPrinter) IsConnected() bool { return true }
