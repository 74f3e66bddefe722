package wallet

import (
	"context"
	"fmt"
	"sync"

	"rental-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// BalanceFetcher is the slice of the remote API the store needs. The
// rentalapi client satisfies it directly.
type BalanceFetcher interface {
	GetWallet(ctx context.Context, userID string) (*model.WalletSnapshot, error)
}

// BalanceCache is the durable client-side layer behind the in-memory cache.
// It survives process restarts so a returning session paints the last known
// balance before the first refresh completes.
type BalanceCache interface {
	Get(ctx context.Context, userID string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, userID string, balance decimal.Decimal) error
	Delete(ctx context.Context, userID string) error
}

// Store holds the cached wallet balance for every active user and is the
// single source of truth for all storefront surfaces. Mutation happens only
// through Refresh, Prime and Clear; consumers read and subscribe.
//
// Each entry carries a monotonic issue counter so that of two overlapping
// refreshes the response applied is the one most recently issued: a slow
// early response can never overwrite a faster later one.
type Store struct {
	fetcher BalanceFetcher
	cache   BalanceCache
	logger  zerolog.Logger

	mu      sync.Mutex
	entries map[string]*entry
	subs    map[int]func(userID string, balance decimal.Decimal)
	nextSub int
}

type entry struct {
	balance decimal.Decimal
	known   bool
	issued  uint64
	applied uint64
}

func NewStore(fetcher BalanceFetcher, cache BalanceCache, logger zerolog.Logger) *Store {
	return &Store{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		entries: make(map[string]*entry),
		subs:    make(map[int]func(string, decimal.Decimal)),
	}
}

// Balance returns the last known balance synchronously. The value may be
// stale; it is always the most recent one the remote service returned for
// this user id. Unknown users read as zero, never as another user's balance.
func (s *Store) Balance(userID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[userID]; ok {
		return e.balance
	}
	return decimal.Zero
}

// Refresh fetches the authoritative balance. On success the cached value is
// replaced, written through to the durable cache and fanned out to
// subscribers. On failure the cached value is left untouched and the error
// is returned to the caller only.
func (s *Store) Refresh(ctx context.Context, userID string) (decimal.Decimal, error) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	e.issued++
	seq := e.issued
	s.mu.Unlock()

	snapshot, err := s.fetcher.GetWallet(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("refresh balance: %w", err)
	}
	balance := snapshot.Balance

	s.mu.Lock()
	current, ok := s.entries[userID]
	if !ok || current != e || seq <= current.applied {
		// The session was cleared, or a later refresh already landed.
		s.mu.Unlock()
		s.logger.Debug().Str("user_id", userID).Uint64("seq", seq).Msg("discarding stale balance response")
		return balance, nil
	}
	current.applied = seq
	current.balance = balance
	current.known = true
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if err := s.cache.Set(ctx, userID, balance); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to persist wallet balance")
	}
	for _, fn := range subs {
		fn(userID, balance)
	}
	return balance, nil
}

// Prime seeds the in-memory entry from the durable cache for fast paint.
// It never overwrites a value an authoritative refresh already applied.
func (s *Store) Prime(ctx context.Context, userID string) decimal.Decimal {
	balance, found, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to read persisted wallet balance")
		return s.Balance(userID)
	}
	if !found {
		return s.Balance(userID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	if e.applied == 0 && !e.known {
		e.balance = balance
		e.known = true
	}
	return e.balance
}

// Clear drops the user's cached balance and its durable copy. It runs before
// any new session can observe the value, so a previous user's balance never
// leaks across a login boundary. In-flight refreshes issued before the clear
// are discarded when they land.
func (s *Store) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	delete(s.entries, userID)
	subs := s.snapshotSubs()
	s.mu.Unlock()

	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to delete persisted wallet balance")
	}
	for _, fn := range subs {
		fn(userID, decimal.Zero)
	}
}

// Subscribe registers a balance-change callback shared by every surface that
// displays the balance, so one refresh feeds all of them without each view
// re-fetching. Returns an id for Unsubscribe.
func (s *Store) Subscribe(fn func(userID string, balance decimal.Decimal)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	s.subs[s.nextSub] = fn
	return s.nextSub
}

func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// callers must hold s.mu
func (s *Store) snapshotSubs() []func(string, decimal.Decimal) {
	subs := make([]func(string, decimal.Decimal), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
