package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/marianotrogo/client-pos-ind/internal/domain/entity"
	"github.com/marianotrogo/client-pos-ind/pkg/apperror"
)

const (
	// DefaultTTL is how long an idle sale session survives before the
	// cleanup loop discards it, mirroring a closed sale-entry view.
	DefaultTTL = 2 * time.Hour

	// CleanupInterval is how often the background cleanup runs.
	CleanupInterval = 5 * time.Minute
)

// LookupKind selects which search box a lookup sequence belongs to. The
// boxes are independent: a client search never supersedes a product one.
type LookupKind int

const (
	LookupProducts LookupKind = iota
	LookupClients

	lookupKinds
)

// Session is one sale-entry session: the cart under composition plus its
// adjustments and selected client. All mutation happens under the store
// lock via Update, so handlers run to completion one at a time per store,
// and a failed mutation can never leave aggregates out of sync (they are
// derived from Lines on read).
type Session struct {
	ID           uuid.UUID
	UserID       int64
	Lines        []entity.LineItem
	DiscountPct  float64
	SurchargePct float64
	Client       *entity.Client

	// Submitting blocks every cart mutation while a sale is in flight,
	// so a double-click cannot double-submit and a line added mid-flight
	// cannot be silently wiped by the post-submit reset.
	Submitting bool

	// searchSeq orders in-flight lookup requests per search box so a
	// slow response cannot overwrite the results of a newer one.
	searchSeq [lookupKinds]uint64

	CreatedAt time.Time
	LastUsed  time.Time
}

// FindLine returns a pointer to the line with the given variant ID, or nil.
func (s *Session) FindLine(variantID int64) *entity.LineItem {
	for i := range s.Lines {
		if s.Lines[i].VariantID == variantID {
			return &s.Lines[i]
		}
	}
	return nil
}

// Reset clears the cart state after a successful submission. The session
// itself stays alive for the next sale.
func (s *Session) Reset() {
	s.Lines = nil
	s.DiscountPct = 0
	s.SurchargePct = 0
	s.Client = nil
}

// Store is an in-memory session store with background TTL cleanup.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewStore creates a session store and starts its cleanup goroutine.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions:    make(map[uuid.UUID]*Session),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// Create opens a new sale session for a cashier.
func (s *Store) Create(userID int64) *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		LastUsed:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Read runs fn on the session under the read lock. fn must not mutate the
// session; reads stay available while a submission is in flight.
func (s *Store) Read(id uuid.UUID, fn func(*Session) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperror.ErrSessionNotFound
	}
	return fn(sess)
}

// Snapshot returns a copy of the session's cart state taken under the
// store lock, safe to use without further locking.
func (s *Store) Snapshot(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	cp := &Session{
		ID:           sess.ID,
		UserID:       sess.UserID,
		Lines:        append([]entity.LineItem(nil), sess.Lines...),
		DiscountPct:  sess.DiscountPct,
		SurchargePct: sess.SurchargePct,
		CreatedAt:    sess.CreatedAt,
		LastUsed:     sess.LastUsed,
	}
	if sess.Client != nil {
		client := *sess.Client
		cp.Client = &client
	}
	return cp, nil
}

// Update runs fn on the session while holding the store lock. Mutations
// are serialized, matching the run-to-completion event model of the sale
// composer: no two handlers ever mutate the same cart concurrently. While
// a submission is in flight every mutation is rejected, so the cart that
// was submitted is exactly the cart that gets reset or retried.
func (s *Store) Update(id uuid.UUID, fn func(*Session) error) error {
	return s.update(id, func(sess *Session) error {
		if sess.Submitting {
			return apperror.ErrSubmitInProgress
		}
		return fn(sess)
	})
}

// update is Update without the submission guard, for the store's own
// bookkeeping (submission state, lookup sequences, post-submit reset).
func (s *Store) update(id uuid.UUID, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperror.ErrSessionNotFound
	}
	sess.LastUsed = time.Now()
	return fn(sess)
}

// Delete discards a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// BeginSubmission marks the session as submitting. It fails when a
// submission is already in flight, so a double-click on confirm cannot
// issue two sale requests.
func (s *Store) BeginSubmission(id uuid.UUID) error {
	return s.update(id, func(sess *Session) error {
		if sess.Submitting {
			return apperror.ErrSubmitInProgress
		}
		sess.Submitting = true
		return nil
	})
}

// EndSubmission clears the submitting flag regardless of outcome.
func (s *Store) EndSubmission(id uuid.UUID) {
	_ = s.update(id, func(sess *Session) error {
		sess.Submitting = false
		return nil
	})
}

// ResetCart clears the cart after the backend accepted the sale. It runs
// while the submission guard is still held, before other mutations are
// admitted again.
func (s *Store) ResetCart(id uuid.UUID) {
	_ = s.update(id, func(sess *Session) error {
		sess.Reset()
		return nil
	})
}

// NextSearchSeq issues the next lookup sequence number for one search box
// of a session. Product and client searches are sequenced independently;
// one box's newer request never cancels the other box's in-flight one.
func (s *Store) NextSearchSeq(id uuid.UUID, kind LookupKind) (uint64, error) {
	var seq uint64
	err := s.update(id, func(sess *Session) error {
		sess.searchSeq[kind]++
		seq = sess.searchSeq[kind]
		return nil
	})
	return seq, err
}

// IsLatestSearch reports whether seq is still the newest lookup issued for
// that search box. A response carrying a stale sequence must be discarded.
func (s *Store) IsLatestSearch(id uuid.UUID, kind LookupKind, seq uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	return sess.searchSeq[kind] == seq
}

// Close stops the cleanup goroutine.
func (s *Store) Close() {
	close(s.stopCleanup)
	s.wg.Wait()
}

func (s *Store) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastUsed.Before(cutoff) && !sess.Submitting {
			delete(s.sessions, id)
		}
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
