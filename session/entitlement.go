package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"pdvstar/ids"
	"pdvstar/kv"
	"pdvstar/models"
)

var ErrUnknownTier = errors.New("type de pass invalide")
var ErrNoSession = errors.New("aucune session utilisateur")

// BuyPass purchases a pass for the current user: expiry is purchase time
// plus the tier duration. The pass is pushed to the remote store and, no
// matter the remote outcome, written locally keyed by user id, so
// entitlement can be re-derived offline.
func (m *Manager) BuyPass(ctx context.Context, tierID, paymentMethod, paymentRef string) (*models.AccessPass, error) {
	tier, ok := models.PassCatalog[tierID]
	if !ok {
		return nil, ErrUnknownTier
	}
	user := m.CurrentUser()
	if user == nil {
		return nil, ErrNoSession
	}

	now := m.clock()()
	pass := models.AccessPass{
		ID:            ids.Local(),
		UserID:        user.ID,
		PassType:      tier.ID,
		PurchasedAt:   now,
		ExpiresAt:     now.Add(time.Duration(tier.DurationDays) * 24 * time.Hour),
		PaymentMethod: paymentMethod,
		PaymentRef:    paymentRef,
		Status:        models.PassActive,
		CreatedAt:     now,
	}

	if created, err := m.passes.CreatePass(ctx, pass); err == nil {
		pass = created
	} else {
		log.Printf("session: pass purchase kept locally only: %v", err)
	}

	m.write(kv.KeyPassPrefix+user.ID, pass)
	return &pass, nil
}

// ActivePass returns the authoritative pass for the current user: active
// status, unexpired, latest expiry wins across the remote record and the
// local fallback copy.
func (m *Manager) ActivePass(ctx context.Context) *models.AccessPass {
	user := m.CurrentUser()
	if user == nil {
		return nil
	}
	now := m.clock()()

	var best *models.AccessPass
	if remote, err := m.passes.FindActivePass(ctx, user.ID, now); err == nil && remote != nil {
		best = remote
	}
	if local := m.localPass(user.ID, now); local != nil {
		if best == nil || local.ExpiresAt.After(best.ExpiresAt) {
			best = local
		}
	}
	return best
}

// HasActivePass derives the entitlement boolean.
func (m *Manager) HasActivePass(ctx context.Context) bool {
	return m.ActivePass(ctx) != nil
}

// CanAccessPremium is exactly HasActivePass.
func (m *Manager) CanAccessPremium(ctx context.Context) bool {
	return m.HasActivePass(ctx)
}

// localPass reads the per-user fallback copy, purging it once expired.
func (m *Manager) localPass(userID string, now time.Time) *models.AccessPass {
	raw, ok := m.store.Get(kv.KeyPassPrefix + userID)
	if !ok {
		return nil
	}
	var pass models.AccessPass
	if err := json.Unmarshal([]byte(raw), &pass); err != nil {
		m.store.Delete(kv.KeyPassPrefix + userID)
		return nil
	}
	if !pass.IsValid(now) {
		m.store.Delete(kv.KeyPassPrefix + userID)
		return nil
	}
	return &pass
}
