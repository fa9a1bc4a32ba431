package session

import (
	"encoding/json"
	"time"

	"pdvstar/kv"
	"pdvstar/models"

	"golang.org/x/crypto/bcrypt"
)

// AdminLogin checks the fixed credentials. Success persists a 24-hour
// session; failure records a user-visible message and leaves state absent.
func (m *Manager) AdminLogin(username, password string) bool {
	m.mu.Lock()
	m.loginError = ""
	user, hash := m.adminUser, m.adminHash
	m.mu.Unlock()

	if username != user || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		m.mu.Lock()
		m.loginError = "Identifiants incorrects"
		m.mu.Unlock()
		return false
	}

	m.write(kv.KeyAdminSession, models.AdminSession{
		Authenticated: true,
		Expiry:        m.clock()().Add(m.adminTTL).UnixMilli(),
	})
	return true
}

func (m *Manager) AdminLogout() {
	m.store.Delete(kv.KeyAdminSession)
}

// LoginError returns the message from the last failed admin login.
func (m *Manager) LoginError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginError
}

// IsAdminAuthenticated reports whether a valid, unexpired admin session
// exists, purging an expired one.
func (m *Manager) IsAdminAuthenticated() bool {
	return validAdminSession(m.store, m.clock()(), true)
}

// AdminRouteAllowed is the route-guard predicate: a valid admin session, or
// a valid user session whose user is an organizer (or admin). Either
// credential suffices on its own.
func (m *Manager) AdminRouteAllowed() bool {
	if m.IsAdminAuthenticated() {
		return true
	}
	u := m.CurrentUser()
	return u != nil && u.IsOrganizer()
}

// ValidAdminSession answers the guard question over a bare storage backend,
// for callers that run before any manager exists. Pure read: it does not
// purge.
func ValidAdminSession(store kv.Store) bool {
	return validAdminSession(store, time.Now(), false)
}

func validAdminSession(store kv.Store, now time.Time, purge bool) bool {
	raw, ok := store.Get(kv.KeyAdminSession)
	if !ok {
		return false
	}
	var sess models.AdminSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		if purge {
			store.Delete(kv.KeyAdminSession)
		}
		return false
	}
	if !sess.Authenticated || now.UnixMilli() > sess.Expiry {
		if purge {
			store.Delete(kv.KeyAdminSession)
		}
		return false
	}
	return true
}
