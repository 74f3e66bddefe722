package session

import (
	"context"
	"fmt"
	"time"

	"rental-storefront/internal/model"
	"rental-storefront/internal/wallet"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// Manager owns browser sessions: issuing the session JWT, keeping the
// remote-service identity, and tying the wallet cache's lifetime to the
// session so a logout can never leave a balance behind for the next login.
type Manager struct {
	store  IdentityStore
	wallet *wallet.Store
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

func NewManager(store IdentityStore, walletStore *wallet.Store, secret string, ttl time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		wallet: walletStore,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// Login stores the identity, issues the session JWT and warms the wallet:
// the persisted balance paints immediately and the refresh replaces it with
// the authoritative value. A failed warm-up refresh is not fatal; the first
// wallet read re-syncs.
func (m *Manager) Login(ctx context.Context, user *model.User) (string, error) {
	if err := m.store.Save(ctx, user, m.ttl); err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	m.wallet.Prime(ctx, user.ID)
	if _, err := m.wallet.Refresh(ctx, user.ID); err != nil {
		m.logger.Warn().Err(err).Str("user_id", user.ID).Msg("wallet refresh on login failed")
	}

	m.logger.Info().Str("user_id", user.ID).Msg("session opened")
	return token, nil
}

// Logout deletes the identity and clears the user's wallet cache before
// returning, so no balance from this session is readable afterwards.
func (m *Manager) Logout(ctx context.Context, userID string) error {
	err := m.store.Delete(ctx, userID)
	m.wallet.Clear(ctx, userID)
	if err != nil {
		return err
	}

	m.logger.Info().Str("user_id", userID).Msg("session closed")
	return nil
}

// Resolve validates a session JWT and loads the stored identity.
func (m *Manager) Resolve(ctx context.Context, token string) (*model.User, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, model.ErrUnauthorized
	}

	user, found, err := m.store.Get(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !found {
		// Valid token, logged-out session.
		return nil, model.ErrUnauthorized
	}
	return user, nil
}
