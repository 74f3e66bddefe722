package booking

import (
	"context"
	"sync"

	"rental-storefront/internal/model"
	"rental-storefront/internal/rentalapi"
	"rental-storefront/internal/wallet"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Manager owns the live wizards. Wizards are in-memory only: losing one on
// restart equals the browser losing a modal on reload, and a draft is never
// partially submitted, so nothing dangles.
type Manager struct {
	api     rentalapi.API
	wallet  *wallet.Store
	settler Settler
	logger  zerolog.Logger

	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewManager(api rentalapi.API, walletStore *wallet.Store, settler Settler, logger zerolog.Logger) *Manager {
	return &Manager{
		api:     api,
		wallet:  walletStore,
		settler: settler,
		logger:  logger,
		wizards: make(map[string]*Wizard),
	}
}

// Start opens a wizard for a car: fetches the car as the price basis and
// warms the wallet cache for the balance display. A failed warm-up refresh
// is logged, not fatal - the review step re-checks against the cache anyway.
func (m *Manager) Start(ctx context.Context, userID, carID string) (*Wizard, error) {
	car, err := m.api.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	m.wallet.Prime(ctx, userID)
	if _, err := m.wallet.Refresh(ctx, userID); err != nil {
		m.logger.Warn().Err(err).Str("user_id", userID).Msg("wallet refresh on wizard entry failed")
	}

	w := newWizard(uuid.New().String(), userID, car, m.wallet, m.settler)

	m.mu.Lock()
	m.wizards[w.ID] = w
	m.mu.Unlock()

	m.logger.Info().Str("wizard_id", w.ID).Str("user_id", userID).Str("car_id", carID).Msg("booking wizard started")
	return w, nil
}

// Get returns a wizard, scoped to its owner.
func (m *Manager) Get(wizardID, userID string) (*Wizard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wizards[wizardID]
	if !ok || w.UserID != userID {
		return nil, model.ErrWizardNotFound
	}
	return w, nil
}

// Close abandons (or, after a commit, just disposes) a wizard and removes it
// from the registry.
func (m *Manager) Close(wizardID, userID string) error {
	w, err := m.Get(wizardID, userID)
	if err != nil {
		return err
	}
	w.Close()

	m.mu.Lock()
	delete(m.wizards, wizardID)
	m.mu.Unlock()
	return nil
}
