package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdvstar/kv"
	"pdvstar/mirror"
	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
)

type stubUserGateway struct{}

func (stubUserGateway) FetchUsers(context.Context) ([]models.User, error) {
	return nil, errors.New("unreachable")
}

func (stubUserGateway) FindUserByPhone(context.Context, string) (*models.User, error) {
	return nil, nil
}

func (stubUserGateway) CreateUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}

func (stubUserGateway) UpdateUser(context.Context, string, models.UserPatch) (models.User, error) {
	return models.User{}, errors.New("unreachable")
}

func setup(t *testing.T) *session.Manager {
	t.Helper()
	store := kv.NewMemory()
	local := mirror.New(store, 0.8, 20)
	manager := session.NewManager(store, syncer.MirrorUsers(local), nil, session.Config{
		AdminUser:     "admin",
		AdminPassword: "admin",
	})
	Init(syncer.NewUserSync(stubUserGateway{}, local), manager)
	return manager
}

func decodeUser(t *testing.T, rec *httptest.ResponseRecorder) models.User {
	t.Helper()
	var body struct {
		Data models.User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return body.Data
}

func TestUpdateProfileIgnoresRoleInPatch(t *testing.T) {
	manager := setup(t)
	manager.Authenticate(context.Background(), "+2250700000001", models.User{Name: "Awa"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile",
		strings.NewReader(`{"name":"Awa Koné","role":"admin"}`))
	UpdateProfile(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decodeUser(t, rec)
	if updated.Name != "Awa Koné" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.Role != models.RoleUser {
		t.Fatalf("role = %q, want %q", updated.Role, models.RoleUser)
	}
	if current := manager.CurrentUser(); current == nil || current.Role != models.RoleUser {
		t.Fatalf("stored session = %#v", current)
	}
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	setup(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"X"}`))
	UpdateProfile(rec, req, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestBecomeOrganizerUpgradesRole(t *testing.T) {
	manager := setup(t)
	manager.Authenticate(context.Background(), "+2250700000002", models.User{Name: "Moussa"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/profile/organizer",
		strings.NewReader(`{"spaceName":"Espace Moussa"}`))
	BecomeOrganizer(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	updated := decodeUser(t, rec)
	if updated.Role != models.RoleOrganizer || updated.SpaceName != "Espace Moussa" {
		t.Fatalf("updated = %#v", updated)
	}
}
