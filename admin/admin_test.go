package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"pdvstar/kv"
	"pdvstar/mirror"
	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
)

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	store := kv.NewMemory()
	local := mirror.New(store, 0.8, 20)
	return session.NewManager(store, syncer.MirrorUsers(local), nil, session.Config{
		AdminUser:     "admin",
		AdminPassword: "admin",
	})
}

func TestLoginRejectsBadPassword(t *testing.T) {
	Init(newSessions(t), nil, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	Login(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Identifiants incorrects") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestRequireAdminGuard(t *testing.T) {
	sessions := newSessions(t)
	Init(sessions, nil, nil, nil)

	called := false
	guarded := RequireAdmin(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	// No credential at all.
	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil), nil)
	if rec.Code != http.StatusForbidden || called {
		t.Fatalf("unauthenticated call passed the guard (status %d)", rec.Code)
	}

	// A plain user session is not enough.
	sessions.Authenticate(context.Background(), "+2250700000001", models.User{})
	rec = httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil), nil)
	if rec.Code != http.StatusForbidden || called {
		t.Fatalf("plain user passed the guard (status %d)", rec.Code)
	}

	// An organizer session opens the route.
	u := sessions.CurrentUser()
	u.Role = models.RoleOrganizer
	sessions.SaveUser(*u)
	rec = httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil), nil)
	if !called {
		t.Fatalf("organizer refused by the guard (status %d)", rec.Code)
	}

	// So does an admin session on its own.
	sessions.Logout()
	called = false
	sessions.AdminLogin("admin", "admin")
	rec = httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil), nil)
	if !called {
		t.Fatalf("admin session refused by the guard (status %d)", rec.Code)
	}
}
