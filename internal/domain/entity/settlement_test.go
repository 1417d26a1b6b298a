package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianotrogo/client-pos-ind/internal/domain/enum"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

func TestReconcile_SingleCash(t *testing.T) {
	s := Settlement{Kind: enum.SettlementSingle, Cash: 15300}

	plan, err := s.Reconcile(15300, false)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentCash, plan.Type)
	require.Len(t, plan.Details, 1)
	assert.Equal(t, int64(15300), plan.Details[0].Amount)
}

func TestReconcile_SingleCash_CentMismatch(t *testing.T) {
	// 152.99 against a total of 153.00 must be rejected.
	s := Settlement{Kind: enum.SettlementSingle, Cash: 15299}

	_, err := s.Reconcile(15300, false)

	assert.ErrorIs(t, err, apperror.ErrAmountMismatch)
}

func TestReconcile_SingleDigital(t *testing.T) {
	s := Settlement{Kind: enum.SettlementSingle, Digital: 15300, DigitalMethod: enum.PaymentCard}

	plan, err := s.Reconcile(15300, false)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentCard, plan.Type)
	require.Len(t, plan.Details, 1)
	assert.Equal(t, enum.PaymentCard, plan.Details[0].Type)
}

func TestReconcile_SingleDigital_MethodRequired(t *testing.T) {
	s := Settlement{Kind: enum.SettlementSingle, Digital: 15300}

	_, err := s.Reconcile(15300, false)

	assert.ErrorIs(t, err, apperror.ErrDigitalMethodRequired)
}

func TestReconcile_Mixed(t *testing.T) {
	s := Settlement{
		Kind:          enum.SettlementMixed,
		Cash:          10000,
		Digital:       5300,
		DigitalMethod: enum.PaymentTransfer,
	}

	plan, err := s.Reconcile(15300, false)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMixed, plan.Type)
	require.Len(t, plan.Details, 2)
	assert.Equal(t, enum.PaymentCash, plan.Details[0].Type)
	assert.Equal(t, int64(10000), plan.Details[0].Amount)
	assert.Equal(t, enum.PaymentTransfer, plan.Details[1].Type)
	assert.Equal(t, int64(5300), plan.Details[1].Amount)
}

func TestReconcile_Mixed_SumMismatch(t *testing.T) {
	s := Settlement{
		Kind:          enum.SettlementMixed,
		Cash:          10000,
		Digital:       5299,
		DigitalMethod: enum.PaymentTransfer,
	}

	_, err := s.Reconcile(15300, false)

	assert.ErrorIs(t, err, apperror.ErrAmountMismatch)
}

func TestReconcile_Mixed_MethodRequired(t *testing.T) {
	s := Settlement{Kind: enum.SettlementMixed, Cash: 10000, Digital: 5300}

	_, err := s.Reconcile(15300, false)

	assert.ErrorIs(t, err, apperror.ErrDigitalMethodRequired)
}

func TestReconcile_StoreCredit(t *testing.T) {
	s := Settlement{Kind: enum.SettlementStoreCredit}

	plan, err := s.Reconcile(15300, true)

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStoreCredit, plan.Type)
	require.Len(t, plan.Details, 1)
	assert.Equal(t, enum.PaymentStoreCredit, plan.Details[0].Type)
	assert.Equal(t, int64(15300), plan.Details[0].Amount)
}

func TestReconcile_StoreCredit_ClientRequired(t *testing.T) {
	s := Settlement{Kind: enum.SettlementStoreCredit}

	_, err := s.Reconcile(15300, false)

	assert.ErrorIs(t, err, apperror.ErrClientRequired)
}

func TestReconcile_StoreCredit_NegativeTotal(t *testing.T) {
	// An exchange in the client's favor credits the account; the plan
	// carries the negative amount unchanged.
	s := Settlement{Kind: enum.SettlementStoreCredit}

	plan, err := s.Reconcile(-3000, true)

	require.NoError(t, err)
	assert.Equal(t, int64(-3000), plan.Details[0].Amount)
}
