package syncer

import (
	"context"
	"log"

	"pdvstar/ids"
	"pdvstar/mirror"
	"pdvstar/models"
)

// EventSync owns the canonical in-memory event collection.
type EventSync struct {
	base
	gw     EventGateway
	local  *mirror.Store
	events []models.Event
}

func NewEventSync(gw EventGateway, local *mirror.Store) *EventSync {
	return &EventSync{gw: gw, local: local}
}

// Load fetches the collection from the remote store. An empty remote is
// first-run: the mirror's seed is pushed up and whichever copy the remote
// confirms becomes canonical. A failed fetch (unreachable, not empty) falls
// back to the mirror without seeding, so connectivity returning later cannot
// duplicate the dataset.
func (s *EventSync) Load(ctx context.Context) {
	s.mu.Lock()
	s.state = Loading
	s.mu.Unlock()

	remoteEvents, err := s.gw.FetchEvents(ctx)

	var canonical []models.Event
	switch {
	case err != nil:
		canonical = s.local.ListEvents()
		log.Printf("syncer: events load failed, serving %d mirror events", len(canonical))
	case len(remoteEvents) == 0:
		seed := s.local.ListEvents()
		seeded, seedErr := s.gw.SeedEvents(ctx, seed)
		if seedErr != nil || len(seeded) == 0 {
			canonical = seed
			log.Printf("syncer: remote empty and seeding failed, keeping %d local events", len(seed))
		} else {
			canonical = seeded
		}
	default:
		canonical = remoteEvents
	}

	s.mu.Lock()
	s.events = canonical
	s.state = Ready
	s.mu.Unlock()
}

// Events returns a copy of the canonical collection.
func (s *EventSync) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *EventSync) Get(id string) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			copied := e
			return &copied
		}
	}
	return nil
}

// Create prepends the event optimistically, then reconciles with the remote
// echo. When the remote write fails the mirror keeps a durable copy and the
// mirror-assigned record replaces the optimistic one.
func (s *EventSync) Create(ctx context.Context, e models.Event) models.Event {
	if e.ID == "" {
		e.ID = ids.Local()
	}
	if e.Status == "" {
		e.Status = models.EventApproved
	}
	// A price only means something on a premium event.
	if !e.IsPremium {
		e.Price = 0
	}
	optimisticID := e.ID

	s.mu.Lock()
	s.events = append([]models.Event{e}, s.events...)
	s.mu.Unlock()

	created, err := s.gw.CreateEvent(ctx, e)
	if err != nil {
		created = s.local.CreateEvent(e)
	}
	s.replaceEvent(optimisticID, created)
	return created
}

// Update merges the patch optimistically and keeps the merge even when the
// remote write fails: discarding a user-visible edit is judged worse than a
// temporarily local-only view. No rollback on this path.
func (s *EventSync) Update(ctx context.Context, id string, patch models.EventPatch) *models.Event {
	s.mu.Lock()
	found := false
	for i := range s.events {
		if s.events[i].ID == id {
			patch.Apply(&s.events[i])
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return nil
	}

	if updated, err := s.gw.UpdateEvent(ctx, id, patch); err == nil {
		s.replaceEvent(id, updated)
		return &updated
	}
	return s.Get(id)
}

// Delete removes the event optimistically. A failed remote delete leaves the
// removal in place with no durable compensation; the row resurfaces on the
// next full load. Known gap, intentionally not papered over.
func (s *EventSync) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	s.mu.Unlock()

	if err := s.gw.DeleteEvent(ctx, id); err != nil {
		log.Printf("syncer: delete event %s uncommitted (remote failed)", id)
	}
}

func (s *EventSync) replaceEvent(id string, e models.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i] = e
			return
		}
	}
}
