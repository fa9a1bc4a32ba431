package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"pdvstar/kv"
	"pdvstar/mirror"
	"pdvstar/models"
	"pdvstar/syncer"
)

var errRemoteDown = errors.New("connection refused")

type fakePassGW struct {
	createErr error
	findErr   error
	remote    *models.AccessPass

	created []models.AccessPass
}

func (f *fakePassGW) CreatePass(ctx context.Context, p models.AccessPass) (models.AccessPass, error) {
	if f.createErr != nil {
		return models.AccessPass{}, f.createErr
	}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePassGW) FindActivePass(ctx context.Context, userID string, now time.Time) (*models.AccessPass, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.remote, nil
}

type fixture struct {
	store   *kv.Memory
	manager *Manager
	passes  *fakePassGW
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemory()
	local := mirror.New(store, 0.8, 20)
	passes := &fakePassGW{}
	m := NewManager(store, syncer.MirrorUsers(local), passes, Config{
		AdminUser:     "admin",
		AdminPassword: "admin",
	})
	f := &fixture{store: store, manager: m, passes: passes, now: time.Now()}
	m.SetClock(func() time.Time { return f.now })
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestAuthenticateRegistersOnFirstContact(t *testing.T) {
	f := newFixture(t)

	user := f.manager.Authenticate(context.Background(), "+2250701020304", models.User{Name: "Awa"})
	if user.ID == "" {
		t.Fatal("registered user has no id")
	}
	if user.Role != models.RoleUser {
		t.Fatalf("role = %q, want %q", user.Role, models.RoleUser)
	}

	current := f.manager.CurrentUser()
	if current == nil || current.ID != user.ID {
		t.Fatalf("current user = %#v", current)
	}

	// Second login by the same phone reuses the account.
	again := f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})
	if again.ID != user.ID {
		t.Fatalf("second login created a new account: %q != %q", again.ID, user.ID)
	}
}

func TestSessionExpiresAfterSevenDays(t *testing.T) {
	f := newFixture(t)
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	f.advance(7*24*time.Hour - time.Minute)
	if f.manager.CurrentUser() == nil {
		t.Fatal("session expired early")
	}

	f.advance(2 * time.Minute)
	if f.manager.CurrentUser() != nil {
		t.Fatal("expired session still served")
	}
	if _, ok := f.store.Get(kv.KeyUserSession); ok {
		t.Fatal("expired session not purged from storage")
	}
}

func TestLogoutPurgesImmediately(t *testing.T) {
	f := newFixture(t)
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	f.manager.Logout()
	if f.manager.CurrentUser() != nil {
		t.Fatal("user still present after logout")
	}
}

func TestSaveUserKeepsExpiry(t *testing.T) {
	f := newFixture(t)
	user := f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	f.advance(6 * 24 * time.Hour)
	user.Name = "Awa B."
	f.manager.SaveUser(user)

	// One more day crosses the original expiry: the profile save must not
	// have extended the session.
	f.advance(25 * time.Hour)
	if f.manager.CurrentUser() != nil {
		t.Fatal("profile save extended the session expiry")
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	if f.manager.AdminLogin("admin", "wrong") {
		t.Fatal("bad password accepted")
	}
	if f.manager.LoginError() != "Identifiants incorrects" {
		t.Fatalf("login error = %q", f.manager.LoginError())
	}
	if f.manager.IsAdminAuthenticated() {
		t.Fatal("failed login left an admin session")
	}
}

func TestAdminSessionExpiresAfterOneDay(t *testing.T) {
	f := newFixture(t)

	if !f.manager.AdminLogin("admin", "admin") {
		t.Fatal("valid credentials rejected")
	}
	if f.manager.LoginError() != "" {
		t.Fatalf("login error after success = %q", f.manager.LoginError())
	}
	if !f.manager.IsAdminAuthenticated() {
		t.Fatal("admin session absent after login")
	}

	f.advance(25 * time.Hour)
	if f.manager.IsAdminAuthenticated() {
		t.Fatal("expired admin session still valid")
	}
	if _, ok := f.store.Get(kv.KeyAdminSession); ok {
		t.Fatal("expired admin session not purged")
	}
}

func TestAdminRouteAllowedForOrganizer(t *testing.T) {
	f := newFixture(t)

	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})
	if f.manager.AdminRouteAllowed() {
		t.Fatal("plain user allowed on admin routes")
	}

	user := f.manager.CurrentUser()
	user.Role = models.RoleOrganizer
	f.manager.SaveUser(*user)
	if !f.manager.AdminRouteAllowed() {
		t.Fatal("organizer refused on admin routes")
	}
}

func TestValidAdminSessionPureRead(t *testing.T) {
	f := newFixture(t)
	if ValidAdminSession(f.store) {
		t.Fatal("empty storage reported a valid admin session")
	}
	f.manager.AdminLogin("admin", "admin")
	if !ValidAdminSession(f.store) {
		t.Fatal("fresh admin session not recognized")
	}
}

func TestBuyPassGrantsTimeBoxedEntitlement(t *testing.T) {
	f := newFixture(t)
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	pass, err := f.manager.BuyPass(context.Background(), "standard", "orange_money", "ref-1")
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if pass.PassType != "standard" || pass.Status != models.PassActive {
		t.Fatalf("pass = %#v", pass)
	}
	wantExpiry := f.now.Add(30 * 24 * time.Hour)
	if !pass.ExpiresAt.Equal(wantExpiry) {
		t.Fatalf("expiry = %v, want %v", pass.ExpiresAt, wantExpiry)
	}

	if !f.manager.HasActivePass(context.Background()) {
		t.Fatal("fresh pass not recognized")
	}
	if !f.manager.CanAccessPremium(context.Background()) {
		t.Fatal("premium gate closed with a fresh pass")
	}

	f.advance(31 * 24 * time.Hour)
	// Re-login: the session itself expired before the pass did.
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})
	if f.manager.HasActivePass(context.Background()) {
		t.Fatal("expired pass still grants entitlement")
	}
}

func TestBuyPassErrors(t *testing.T) {
	f := newFixture(t)

	if _, err := f.manager.BuyPass(context.Background(), "standard", "wave", "r"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}

	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})
	if _, err := f.manager.BuyPass(context.Background(), "platine", "wave", "r"); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("err = %v, want ErrUnknownTier", err)
	}
}

func TestBuyPassRemoteFailureKeptLocally(t *testing.T) {
	f := newFixture(t)
	f.passes.createErr = errRemoteDown
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	pass, err := f.manager.BuyPass(context.Background(), "decouverte", "mtn_momo", "r")
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if pass == nil {
		t.Fatal("no pass returned")
	}
	if !f.manager.HasActivePass(context.Background()) {
		t.Fatal("locally kept pass not recognized")
	}
}

func TestActivePassLatestExpiryWins(t *testing.T) {
	f := newFixture(t)
	f.manager.Authenticate(context.Background(), "+2250701020304", models.User{})

	// Local purchase: 30 days.
	local, err := f.manager.BuyPass(context.Background(), "standard", "card", "r")
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	// The remote record expires earlier; the local copy must win.
	f.passes.remote = &models.AccessPass{
		ID:        "remote-pass",
		PassType:  "decouverte",
		Status:    models.PassActive,
		ExpiresAt: f.now.Add(3 * 24 * time.Hour),
	}

	got := f.manager.ActivePass(context.Background())
	if got == nil || got.ID != local.ID {
		t.Fatalf("active pass = %#v, want the later-expiring local copy", got)
	}
}
