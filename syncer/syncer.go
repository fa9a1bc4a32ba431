// Package syncer holds the per-entity-family synchronization controllers.
// Each controller owns its canonical in-memory collection, applies mutations
// optimistically, then reconciles with the remote gateway: the gateway's echo
// replaces the optimistic entry on success, and the documented fallback
// policy applies on failure (mirror write for creates, keep-as-is for
// updates, uncompensated removal for deletes).
//
// Mutations against the same identity issued concurrently are not
// serialized; the last writer wins and no version check is made. This is an
// accepted limitation of the single-writer-per-session usage, not a bug.
package syncer

import (
	"context"
	"sync"

	"pdvstar/models"
)

// base carries the lock and lifecycle state shared by all controllers.
type base struct {
	mu    sync.Mutex
	state State
}

func (b *base) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// State of one controller's collection lifecycle.
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Gateway contracts consumed by the controllers; satisfied by
// *remote.Gateway and by test fakes.

type EventGateway interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	SeedEvents(ctx context.Context, events []models.Event) ([]models.Event, error)
}

type UserGateway interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error)
}

type AdGateway interface {
	FetchAds(ctx context.Context) ([]models.Ad, error)
	FetchActiveAds(ctx context.Context) ([]models.Ad, error)
	CreateAd(ctx context.Context, a models.Ad) (models.Ad, error)
	UpdateAd(ctx context.Context, id string, patch models.AdPatch) (models.Ad, error)
	DeleteAd(ctx context.Context, id string) error
	IncrementAdClick(ctx context.Context, id string)
	IncrementAdView(ctx context.Context, id string)
}

type PassGateway interface {
	CreatePass(ctx context.Context, p models.AccessPass) (models.AccessPass, error)
	FetchAllPasses(ctx context.Context) ([]models.AccessPass, error)
	FetchPassHistory(ctx context.Context, userID string) ([]models.AccessPass, error)
}
