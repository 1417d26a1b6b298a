package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

func newCartFixture(t *testing.T) (*CartService, uuid.UUID) {
	t.Helper()
	svc := NewCartService(newTestSessionStore(t))
	view := svc.Open(1)
	id, err := uuid.Parse(view.SessionID)
	require.NoError(t, err)
	return svc, id
}

func shirtInput() AddLineInput {
	return AddLineInput{
		ProductID:   100,
		VariantID:   1001,
		Code:        "REM-01",
		Description: "Remera basica",
		Size:        "M",
		UnitPrice:   10000,
	}
}

func TestCartService_OpenStartsEmpty(t *testing.T) {
	svc, id := newCartFixture(t)

	view, err := svc.View(id)

	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.Totals.Total)
	assert.Nil(t, view.Client)
}

func TestCartService_AddLineTwiceIncrementsQuantity(t *testing.T) {
	svc, id := newCartFixture(t)

	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)
	view, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, int64(20000), view.Totals.Total)
}

func TestCartService_AddDistinctVariants(t *testing.T) {
	svc, id := newCartFixture(t)

	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	other := shirtInput()
	other.VariantID = 1002
	other.Size = "L"
	view, err := svc.AddLine(id, other)
	require.NoError(t, err)

	assert.Len(t, view.Lines, 2)
}

func TestCartService_SetQuantityClampsToOne(t *testing.T) {
	svc, id := newCartFixture(t)
	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	view, err := svc.SetQuantity(id, 1001, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)

	view, err = svc.SetQuantity(id, 1001, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Quantity)
}

func TestCartService_SetQuantityUnknownLine(t *testing.T) {
	svc, id := newCartFixture(t)

	_, err := svc.SetQuantity(id, 999, 2)

	assert.ErrorIs(t, err, apperror.ErrLineNotFound)
}

func TestCartService_ToggleReturn(t *testing.T) {
	svc, id := newCartFixture(t)
	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	view, err := svc.ToggleReturn(id, 1001)
	require.NoError(t, err)
	assert.True(t, view.Lines[0].IsReturn)
	assert.True(t, view.Totals.IsExchange)
	assert.Equal(t, int64(-10000), view.Totals.Total)

	// Un-toggling restores a plain sale.
	view, err = svc.ToggleReturn(id, 1001)
	require.NoError(t, err)
	assert.False(t, view.Lines[0].IsReturn)
	assert.False(t, view.Totals.IsExchange)
	assert.Equal(t, int64(10000), view.Totals.Total)
}

func TestCartService_RemoveLine(t *testing.T) {
	svc, id := newCartFixture(t)
	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	view, err := svc.RemoveLine(id, 1001)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	_, err = svc.RemoveLine(id, 1001)
	assert.ErrorIs(t, err, apperror.ErrLineNotFound)
}

func TestCartService_SetAdjustmentsClamps(t *testing.T) {
	svc, id := newCartFixture(t)
	_, err := svc.AddLine(id, shirtInput())
	require.NoError(t, err)

	view, err := svc.SetAdjustments(id, 150, -10)

	require.NoError(t, err)
	assert.Equal(t, float64(100), view.Totals.DiscountPct)
	assert.Equal(t, float64(0), view.Totals.SurchargePct)
}

func TestCartService_SelectAndClearClient(t *testing.T) {
	svc, id := newCartFixture(t)

	view, err := svc.SelectClient(id, &entity.Client{ID: 5, Name: "Ana Perez"})
	require.NoError(t, err)
	require.NotNil(t, view.Client)
	assert.Equal(t, "Ana Perez", view.Client.Name)

	view, err = svc.SelectClient(id, nil)
	require.NoError(t, err)
	assert.Nil(t, view.Client)
}

func TestCartService_DiscardedSessionIsGone(t *testing.T) {
	svc, id := newCartFixture(t)

	svc.Discard(id)

	_, err := svc.View(id)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
}
