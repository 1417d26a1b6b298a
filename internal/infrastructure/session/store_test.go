package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestStore_CreateAndRead(t *testing.T) {
	s := newTestStore(t)

	sess := s.Create(7)

	err := s.Read(sess.ID, func(got *Session) error {
		assert.Equal(t, int64(7), got.UserID)
		assert.Empty(t, got.Lines)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestStore_ReadUnknown(t *testing.T) {
	s := newTestStore(t)

	err := s.Read(uuid.New(), func(*Session) error { return nil })

	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestStore_Update(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)

	err := s.Update(sess.ID, func(sess *Session) error {
		sess.Lines = append(sess.Lines, entity.LineItem{VariantID: 10, Quantity: 1})
		return nil
	})

	require.NoError(t, err)
	got, err := s.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 1)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)

	s.Delete(sess.ID)

	_, err := s.Snapshot(sess.ID)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)
	require.NoError(t, s.Update(sess.ID, func(sess *Session) error {
		sess.Lines = []entity.LineItem{{VariantID: 10, Quantity: 1}}
		sess.Client = &entity.Client{ID: 3, Name: "Ana"}
		return nil
	}))

	snap, err := s.Snapshot(sess.ID)
	require.NoError(t, err)

	// Mutating the snapshot must not touch the stored session.
	snap.Lines[0].Quantity = 99
	snap.Client.Name = "changed"

	err = s.Read(sess.ID, func(got *Session) error {
		assert.Equal(t, 1, got.Lines[0].Quantity)
		assert.Equal(t, "Ana", got.Client.Name)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_SubmissionGuard(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)

	require.NoError(t, s.BeginSubmission(sess.ID))

	err := s.BeginSubmission(sess.ID)
	assert.ErrorIs(t, err, apperror.ErrSubmitInProgress)

	s.EndSubmission(sess.ID)
	assert.NoError(t, s.BeginSubmission(sess.ID))
}

func TestStore_UpdateRejectedWhileSubmitting(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)
	require.NoError(t, s.BeginSubmission(sess.ID))

	err := s.Update(sess.ID, func(sess *Session) error {
		sess.Lines = append(sess.Lines, entity.LineItem{VariantID: 10, Quantity: 1})
		return nil
	})

	assert.ErrorIs(t, err, apperror.ErrSubmitInProgress)

	// No partial mutation leaked through.
	snap, snapErr := s.Snapshot(sess.ID)
	require.NoError(t, snapErr)
	assert.Empty(t, snap.Lines)

	s.EndSubmission(sess.ID)
	assert.NoError(t, s.Update(sess.ID, func(*Session) error { return nil }))
}

func TestStore_ReadAvailableWhileSubmitting(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)
	require.NoError(t, s.BeginSubmission(sess.ID))

	err := s.Read(sess.ID, func(*Session) error { return nil })

	assert.NoError(t, err)
}

func TestStore_ResetCart(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)
	require.NoError(t, s.Update(sess.ID, func(sess *Session) error {
		sess.Lines = []entity.LineItem{{VariantID: 10, Quantity: 1}}
		sess.DiscountPct = 10
		return nil
	}))

	// Reset runs while the submission guard is still held.
	require.NoError(t, s.BeginSubmission(sess.ID))
	s.ResetCart(sess.ID)
	s.EndSubmission(sess.ID)

	snap, err := s.Snapshot(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.DiscountPct)
}

func TestStore_SearchSequence(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)

	first, err := s.NextSearchSeq(sess.ID, LookupProducts)
	require.NoError(t, err)
	second, err := s.NextSearchSeq(sess.ID, LookupProducts)
	require.NoError(t, err)

	assert.Greater(t, second, first)
	assert.False(t, s.IsLatestSearch(sess.ID, LookupProducts, first))
	assert.True(t, s.IsLatestSearch(sess.ID, LookupProducts, second))
	assert.False(t, s.IsLatestSearch(uuid.New(), LookupProducts, second))
}

func TestStore_SearchSequencesAreIndependentPerBox(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)

	productSeq, err := s.NextSearchSeq(sess.ID, LookupProducts)
	require.NoError(t, err)

	// A client search issued afterwards must not supersede the product one.
	_, err = s.NextSearchSeq(sess.ID, LookupClients)
	require.NoError(t, err)

	assert.True(t, s.IsLatestSearch(sess.ID, LookupProducts, productSeq))
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	s := newTestStore(t)
	idle := s.Create(1)
	active := s.Create(2)

	s.mu.Lock()
	s.sessions[idle.ID].LastUsed = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	s.expireSessions()

	_, err := s.Snapshot(idle.ID)
	assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	_, err = s.Snapshot(active.ID)
	assert.NoError(t, err)
}

func TestStore_NeverExpiresSubmittingSession(t *testing.T) {
	s := newTestStore(t)
	sess := s.Create(1)
	require.NoError(t, s.BeginSubmission(sess.ID))

	s.mu.Lock()
	s.sessions[sess.ID].LastUsed = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	s.expireSessions()

	_, err := s.Snapshot(sess.ID)
	assert.NoError(t, err)
}

func TestSession_Reset(t *testing.T) {
	sess := &Session{
		Lines:        []entity.LineItem{{VariantID: 1, Quantity: 2}},
		DiscountPct:  10,
		SurchargePct: 5,
		Client:       &entity.Client{ID: 3, Name: "Ana"},
	}

	sess.Reset()

	assert.Empty(t, sess.Lines)
	assert.Zero(t, sess.DiscountPct)
	assert.Zero(t, sess.SurchargePct)
	assert.Nil(t, sess.Client)
}
