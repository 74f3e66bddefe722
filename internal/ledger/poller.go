package ledger

import (
	"context"
	"sync"
	"time"

	"rental-storefront/internal/model"

	"github.com/rs/zerolog"
)

// TransactionSource fetches the wallet snapshot whose transaction list feeds
// the ledger. Satisfied by the rental API client.
type TransactionSource interface {
	GetWallet(ctx context.Context, userID string) (*model.WalletSnapshot, error)
}

// watch is one user's running ledger task. Responses are applied only while
// this exact watch is still registered, so anything landing after an unmount
// is dropped.
type watch struct {
	transactions []model.Transaction
	stopChan     chan struct{}
	wg           sync.WaitGroup
}

// Poller keeps a periodically refreshed transaction ledger per user. The
// first load is synchronous and gates the mount: until it succeeds there is
// nothing to show and no ticker to run.
type Poller struct {
	source   TransactionSource
	interval time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	watches map[string]*watch
}

func NewPoller(source TransactionSource, interval time.Duration, logger zerolog.Logger) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
		logger:   logger,
		watches:  make(map[string]*watch),
	}
}

// Mount starts the ledger task for a user. The initial load runs in the
// caller's context; on error nothing is registered and the caller retries
// explicitly. Mounting an already mounted user is a no-op: the ticker is
// keeping the snapshot current.
func (p *Poller) Mount(ctx context.Context, userID string) error {
	p.mu.Lock()
	if _, ok := p.watches[userID]; ok {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	snapshot, err := p.source.GetWallet(ctx, userID)
	if err != nil {
		return err
	}

	w := &watch{
		transactions: snapshot.Transactions,
		stopChan:     make(chan struct{}),
	}

	p.mu.Lock()
	if _, ok := p.watches[userID]; ok {
		// Lost a mount race; the earlier watch stays.
		p.mu.Unlock()
		return nil
	}
	p.watches[userID] = w
	p.mu.Unlock()

	// The poll context keeps the request's values (the bearer token rides
	// on it) but not its cancellation, which ends with the mounting request.
	p.run(context.WithoutCancel(ctx), userID, w)

	p.logger.Info().Str("user_id", userID).Dur("interval", p.interval).Msg("ledger poller mounted")
	return nil
}

func (p *Poller) run(ctx context.Context, userID string, w *watch) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.poll(ctx, userID, w)
			case <-w.stopChan:
				p.logger.Debug().Str("user_id", userID).Msg("ledger poller stopping")
				return
			}
		}
	}()
}

// poll refreshes one snapshot. Failures after the successful first load are
// transient by definition (the next tick retries) and stay at debug level.
func (p *Poller) poll(ctx context.Context, userID string, w *watch) {
	pollCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	snapshot, err := p.source.GetWallet(pollCtx, userID)
	if err != nil {
		p.logger.Debug().Err(err).Str("user_id", userID).Msg("ledger refresh failed, retrying on next tick")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.watches[userID] != w {
		// Unmounted (or remounted) while the request was in flight.
		return
	}
	w.transactions = snapshot.Transactions
}

// Unmount stops the user's ledger task and forgets its snapshot.
func (p *Poller) Unmount(userID string) {
	p.mu.Lock()
	w, ok := p.watches[userID]
	if ok {
		delete(p.watches, userID)
	}
	p.mu.Unlock()
	if !ok {
		return
	}

	close(w.stopChan)
	w.wg.Wait()
	p.logger.Info().Str("user_id", userID).Msg("ledger poller unmounted")
}

// Snapshot returns the user's transactions exactly as the server last sent
// them, never re-sorted or de-duplicated, and whether the ledger is mounted.
func (p *Poller) Snapshot(userID string) ([]model.Transaction, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.watches[userID]
	if !ok {
		return nil, false
	}
	out := make([]model.Transaction, len(w.transactions))
	copy(out, w.transactions)
	return out, true
}

// Close unmounts every user. Called on shutdown.
func (p *Poller) Close() {
	p.mu.Lock()
	watches := p.watches
	p.watches = make(map[string]*watch)
	p.mu.Unlock()

	for _, w := range watches {
		close(w.stopChan)
		w.wg.Wait()
	}
}
