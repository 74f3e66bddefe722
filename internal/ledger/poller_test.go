package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rental-storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	mu    sync.Mutex
	calls int
	txns  []model.Transaction
	err   error
	gate  chan struct{} // when set, calls after the first park here
}

func (s *stubSource) GetWallet(ctx context.Context, userID string) (*model.WalletSnapshot, error) {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	gate := s.gate
	txns, err := s.txns, s.err
	s.mu.Unlock()

	if gate != nil && !first {
		<-gate
		s.mu.Lock()
		txns, err = s.txns, s.err
		s.mu.Unlock()
	}
	if err != nil {
		return nil, err
	}
	return &model.WalletSnapshot{Balance: decimal.Zero, Transactions: txns}, nil
}

func (s *stubSource) set(txns []model.Transaction, err error) {
	s.mu.Lock()
	s.txns, s.err = txns, err
	s.mu.Unlock()
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func txn(id string, typ model.TransactionType) model.Transaction {
	return model.Transaction{ID: id, Type: typ, Amount: decimal.NewFromInt(10)}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func TestPoller_Mount_FirstLoadFailure(t *testing.T) {
	source := &stubSource{err: errors.New("gateway timeout")}
	p := NewPoller(source, time.Hour, zerolog.Nop())
	defer p.Close()

	err := p.Mount(context.Background(), "user-1")

	require.Error(t, err)
	_, mounted := p.Snapshot("user-1")
	assert.False(t, mounted)
	assert.Equal(t, 1, source.callCount())
}

func TestPoller_Mount_SnapshotKeepsServerOrder(t *testing.T) {
	// Deliberately not date-sorted; the snapshot must come back verbatim.
	source := &stubSource{txns: []model.Transaction{
		txn("t3", model.TypeCredit),
		txn("t1", model.TypeDebit),
		txn("t2", model.TypeCredit),
	}}
	p := NewPoller(source, time.Hour, zerolog.Nop())
	defer p.Close()

	require.NoError(t, p.Mount(context.Background(), "user-1"))

	snapshot, mounted := p.Snapshot("user-1")
	require.True(t, mounted)
	assert.Equal(t, []string{"t3", "t1", "t2"}, ids(snapshot))
}

func TestPoller_Mount_Idempotent(t *testing.T) {
	source := &stubSource{}
	p := NewPoller(source, time.Hour, zerolog.Nop())
	defer p.Close()

	require.NoError(t, p.Mount(context.Background(), "user-1"))
	require.NoError(t, p.Mount(context.Background(), "user-1"))

	assert.Equal(t, 1, source.callCount())
}

func TestPoller_TickRefreshesSnapshot(t *testing.T) {
	source := &stubSource{txns: []model.Transaction{txn("t1", model.TypeCredit)}}
	p := NewPoller(source, 5*time.Millisecond, zerolog.Nop())
	defer p.Close()

	require.NoError(t, p.Mount(context.Background(), "user-1"))
	source.set([]model.Transaction{txn("t1", model.TypeCredit), txn("t2", model.TypeDebit)}, nil)

	require.Eventually(t, func() bool {
		snapshot, _ := p.Snapshot("user-1")
		return len(snapshot) == 2
	}, time.Second, time.Millisecond)
}

func TestPoller_TickFailureKeepsLastSnapshot(t *testing.T) {
	source := &stubSource{txns: []model.Transaction{txn("t1", model.TypeCredit)}}
	p := NewPoller(source, 5*time.Millisecond, zerolog.Nop())
	defer p.Close()

	require.NoError(t, p.Mount(context.Background(), "user-1"))
	source.set(nil, errors.New("server unavailable"))

	require.Eventually(t, func() bool { return source.callCount() >= 3 }, time.Second, time.Millisecond)

	snapshot, mounted := p.Snapshot("user-1")
	require.True(t, mounted)
	assert.Equal(t, []string{"t1"}, ids(snapshot))
}

func TestPoller_Unmount_DropsLateResponse(t *testing.T) {
	source := &stubSource{
		txns: []model.Transaction{txn("t1", model.TypeCredit)},
		gate: make(chan struct{}),
	}
	p := NewPoller(source, 5*time.Millisecond, zerolog.Nop())

	require.NoError(t, p.Mount(context.Background(), "user-1"))
	require.Eventually(t, func() bool { return source.callCount() >= 2 }, time.Second, time.Millisecond)

	// The poll is parked mid-flight; unmount, then let it complete.
	done := make(chan struct{})
	go func() {
		p.Unmount("user-1")
		close(done)
	}()
	source.set([]model.Transaction{txn("stale", model.TypeDebit)}, nil)
	close(source.gate)
	<-done

	_, mounted := p.Snapshot("user-1")
	assert.False(t, mounted)

	// A remount must not surface the parked response either.
	source.mu.Lock()
	source.gate = nil
	source.txns = []model.Transaction{txn("fresh", model.TypeCredit)}
	source.mu.Unlock()
	require.NoError(t, p.Mount(context.Background(), "user-1"))
	snapshot, mounted := p.Snapshot("user-1")
	require.True(t, mounted)
	assert.Equal(t, []string{"fresh"}, ids(snapshot))
	p.Close()
}

func TestPoller_Close_StopsAllWatches(t *testing.T) {
	source := &stubSource{}
	p := NewPoller(source, 5*time.Millisecond, zerolog.Nop())

	require.NoError(t, p.Mount(context.Background(), "user-1"))
	require.NoError(t, p.Mount(context.Background(), "user-2"))

	p.Close()

	_, mounted := p.Snapshot("user-1")
	assert.False(t, mounted)
	_, mounted = p.Snapshot("user-2")
	assert.False(t, mounted)
}
