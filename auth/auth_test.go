package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdvstar/kv"
	"pdvstar/middleware"
	"pdvstar/mirror"
	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
)

func setup(t *testing.T, userTTL time.Duration) {
	t.Helper()
	store := kv.NewMemory()
	local := mirror.New(store, 0.8, 20)
	Init(session.NewManager(store, syncer.MirrorUsers(local), nil, session.Config{
		UserTTL:       userTTL,
		AdminUser:     "admin",
		AdminPassword: "admin",
	}))
}

func TestLoginIssuesTokenMatchingSessionTTL(t *testing.T) {
	setup(t, time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"phone":"+2250700000001","name":"Awa"}`))
	Login(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Data.User.Phone != "+2250700000001" {
		t.Fatalf("user = %#v", body.Data.User)
	}

	claims, err := middleware.ValidateJWT(body.Data.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != body.Data.User.ID {
		t.Fatalf("token subject = %q, user = %q", claims.UserID, body.Data.User.ID)
	}

	// The token expires with the configured session lifetime, not a
	// hardcoded window.
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > time.Hour || ttl < 55*time.Minute {
		t.Fatalf("token ttl = %v, want about 1h", ttl)
	}
}

func TestLoginRequiresPhone(t *testing.T) {
	setup(t, time.Hour)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"phone":"  "}`))
	Login(rec, req, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
