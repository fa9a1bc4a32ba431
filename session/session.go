// Package session owns the three time-boxed credentials: the end-user
// session (7 days), the admin session (24 hours, fixed credentials) and the
// purchased access pass. State lives behind an injectable key-value backend;
// callers go through the Manager, never through storage directly. Any
// persisted credential whose expiry has passed is treated as absent and
// purged on the next read.
package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"pdvstar/kv"
	"pdvstar/models"
	"pdvstar/syncer"

	"golang.org/x/crypto/bcrypt"
)

// PassGateway is the slice of the remote gateway the entitlement path needs.
type PassGateway interface {
	CreatePass(ctx context.Context, p models.AccessPass) (models.AccessPass, error)
	FindActivePass(ctx context.Context, userID string, now time.Time) (*models.AccessPass, error)
}

type Manager struct {
	mu     sync.Mutex
	store  kv.Store
	users  syncer.UserDirectory
	passes PassGateway

	userTTL   time.Duration
	adminTTL  time.Duration
	adminUser string
	adminHash []byte

	loginError string

	now func() time.Time
}

type Config struct {
	UserTTL       time.Duration
	AdminTTL      time.Duration
	AdminUser     string
	AdminPassword string
}

func NewManager(store kv.Store, users syncer.UserDirectory, passes PassGateway, cfg Config) *Manager {
	if cfg.UserTTL <= 0 {
		cfg.UserTTL = 7 * 24 * time.Hour
	}
	if cfg.AdminTTL <= 0 {
		cfg.AdminTTL = 24 * time.Hour
	}
	if cfg.AdminUser == "" {
		cfg.AdminUser = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("session: admin credential hash failed: %v", err)
	}
	return &Manager{
		store:     store,
		users:     users,
		passes:    passes,
		userTTL:   cfg.UserTTL,
		adminTTL:  cfg.AdminTTL,
		adminUser: cfg.AdminUser,
		adminHash: hash,
		now:       time.Now,
	}
}

// UserTTL is the configured user session lifetime; token issuers use it so
// the bearer token and the persisted session expire together.
func (m *Manager) UserTTL() time.Duration {
	return m.userTTL
}

// SetClock swaps the time source; tests use it to simulate expiry.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Manager) clock() func() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// CurrentUser returns the authenticated user, or nil. An expired session is
// purged from storage before reporting absent.
func (m *Manager) CurrentUser() *models.User {
	raw, ok := m.store.Get(kv.KeyUserSession)
	if !ok {
		return nil
	}
	var sess models.UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		m.store.Delete(kv.KeyUserSession)
		return nil
	}
	if m.clock()().UnixMilli() > sess.Expiry {
		m.store.Delete(kv.KeyUserSession)
		return nil
	}
	return &sess.User
}

// Authenticate logs a user in by phone, registering on first contact. The
// lookup and the create both run through the dual-backend user directory, so
// a remote failure transparently lands on the local mirror. The resulting
// user is persisted with a fresh expiry.
func (m *Manager) Authenticate(ctx context.Context, phone string, profile models.User) models.User {
	existing, err := m.users.FindByPhone(ctx, phone)
	if err != nil {
		// The fallback decorator never errors in practice; absorb anyway.
		log.Printf("session: authenticate lookup: %v", err)
	}

	var user models.User
	if existing != nil {
		user = *existing
	} else {
		profile.Phone = phone
		if profile.Role == "" {
			profile.Role = models.RoleUser
		}
		created, err := m.users.Create(ctx, profile)
		if err != nil {
			log.Printf("session: register: %v", err)
			created = profile
		}
		user = created
	}

	m.persistUser(user)
	return user
}

// SaveUser refreshes the persisted session copy of the user (profile edits,
// role upgrades) without extending the expiry.
func (m *Manager) SaveUser(u models.User) {
	raw, ok := m.store.Get(kv.KeyUserSession)
	if !ok {
		return
	}
	var sess models.UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return
	}
	sess.User = u
	m.write(kv.KeyUserSession, sess)
}

// Logout purges the session immediately, independent of expiry.
func (m *Manager) Logout() {
	m.store.Delete(kv.KeyUserSession)
}

func (m *Manager) persistUser(u models.User) {
	m.write(kv.KeyUserSession, models.UserSession{
		User:   u,
		Expiry: m.clock()().Add(m.userTTL).UnixMilli(),
	})
}

func (m *Manager) write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("session: marshal %s: %v", key, err)
		return
	}
	m.store.Set(key, string(raw))
}
