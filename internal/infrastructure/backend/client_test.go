package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianotrogo/client-pos-ind/internal/domain/gateway"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	return c, srv
}

func TestSearchProducts(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"code":"REM-01","description":"Remera basica","variants":[{"id":10,"size":"M","stock":3,"price":100.50}]}]`))
	})
	defer srv.Close()

	products, err := c.SearchProducts(context.Background(), "tok", "remera")

	require.NoError(t, err)
	assert.Equal(t, "/productos/search", gotPath)
	assert.Equal(t, "remera", gotQuery)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, products, 1)
	require.Len(t, products[0].Variants, 1)
	assert.Equal(t, int64(10050), products[0].Variants[0].Price)
	assert.True(t, products[0].HasStock())
}

func TestSearchClients(t *testing.T) {
	var gotSearch string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		w.Write([]byte(`[{"id":5,"name":"Ana Perez","dni":"30123456","balance":-25.00}]`))
	})
	defer srv.Close()

	clients, err := c.SearchClients(context.Background(), "tok", "ana")

	require.NoError(t, err)
	assert.Equal(t, "ana", gotSearch)
	require.Len(t, clients, 1)
	assert.Equal(t, int64(-2500), clients[0].Balance)
}

func TestCreateSale(t *testing.T) {
	var gotSub gateway.SaleSubmission
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotSub))
		w.Write([]byte(`{"sale":{"id":1,"number":42,"total":153,"paymentType":"EFECTIVO"}}`))
	})
	defer srv.Close()

	sub := &gateway.SaleSubmission{UserID: 1, Total: 153, PaymentType: "EFECTIVO"}
	sale, err := c.CreateSale(context.Background(), "tok", sub)

	require.NoError(t, err)
	assert.Equal(t, int64(42), sale.Number)
	assert.Equal(t, 153.0, gotSub.Total)
	assert.Equal(t, "EFECTIVO", gotSub.PaymentType)
}

func TestCreateSale_RejectionPassesMessageThrough(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Stock insuficiente para REM-01 (M)"}`))
	})
	defer srv.Close()

	_, err := c.CreateSale(context.Background(), "tok", &gateway.SaleSubmission{})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "Stock insuficiente para REM-01 (M)", appErr.Message)
}

func TestDo_ServerErrorBecomesBadGateway(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := c.GetSettings(context.Background(), "tok")

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestDo_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	for i := 0; i < 5; i++ {
		_, err := c.GetSettings(context.Background(), "tok")
		require.Error(t, err)
	}
	assert.Equal(t, 5, hits)

	// The breaker is now open; the request never reaches the server.
	_, err := c.GetSettings(context.Background(), "tok")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Equal(t, 5, hits)
}

func TestDo_RejectionsDoNotTripBreaker(t *testing.T) {
	var hits int
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"rechazado"}`))
	})
	defer srv.Close()

	for i := 0; i < 10; i++ {
		_, err := c.GetSettings(context.Background(), "tok")
		require.Error(t, err)
	}
	// Every request reached the server; 4xx answers never open the breaker.
	assert.Equal(t, 10, hits)
}

func TestGetSettings(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"businessName":"TIENDA NORTE","address":"Av. Siempre Viva 123","phone":"011-4444-5555"}`))
	})
	defer srv.Close()

	settings, err := c.GetSettings(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "TIENDA NORTE", settings.BusinessName)
}
