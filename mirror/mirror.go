// Package mirror is the device-local fallback dataset: a deterministic,
// persisted copy of events and users that stays readable and writable with
// no connectivity. Every operation is a total function over the persisted
// collections; storage trouble degrades to an empty collection, never to an
// error.
package mirror

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"pdvstar/ids"
	"pdvstar/kv"
	"pdvstar/models"
)

type Store struct {
	mu    sync.Mutex
	store kv.Store

	// Re-seed guard knobs, see needsReseed.
	minCoordsFraction float64
	seedCount         int

	now func() time.Time
}

func New(store kv.Store, minCoordsFraction float64, seedCount int) *Store {
	if seedCount <= 0 {
		seedCount = 20
	}
	return &Store{
		store:             store,
		minCoordsFraction: minCoordsFraction,
		seedCount:         seedCount,
		now:               time.Now,
	}
}

// --- users ---

func (s *Store) FindUserByPhone(phone string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.loadUsers() {
		if u.Phone == phone {
			copied := u
			return &copied
		}
	}
	return nil
}

func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = ids.Local()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Following == nil {
		u.Following = []string{}
	}
	u.CreatedAt = s.now()
	users := append(s.loadUsers(), u)
	s.saveUsers(users)
	return u
}

// UpdateUser merges the patch into the stored user by id. An unknown id is a
// no-op returning nil.
func (s *Store) UpdateUser(id string, patch models.UserPatch) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.loadUsers()
	for i := range users {
		if users[i].ID == id {
			patch.Apply(&users[i])
			s.saveUsers(users)
			copied := users[i]
			return &copied
		}
	}
	return nil
}

// --- events ---

// ListEvents returns the fallback event collection, newest first (creation
// time, falling back to the scheduled time when creation time is absent).
// The seed dataset is regenerated first whenever the stored collection looks
// stale (see needsReseed).
func (s *Store) ListEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadEvents()
	if s.needsReseed(events) {
		events = s.generateSeed()
		s.saveEvents(events)
		log.Printf("mirror: regenerated seed dataset (%d events)", len(events))
	}
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return effectiveTime(sorted[i]).After(effectiveTime(sorted[j]))
	})
	return sorted
}

func (s *Store) CreateEvent(e models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = ids.Local()
	}
	e.ParticipantCount = 0
	e.IsRegistered = false
	if e.Image == "" {
		e.Image = placeholderImage(e.ID)
	}
	if e.Status == "" {
		e.Status = models.EventApproved
	}
	if e.Features == nil {
		e.Features = []string{}
	}
	// A price only means something on a premium event.
	if !e.IsPremium {
		e.Price = 0
	}
	e.CreatedAt = s.now()
	// Newest events sit at the head of the collection.
	events := append([]models.Event{e}, s.loadEvents()...)
	s.saveEvents(events)
	return e
}

func (s *Store) UpdateEvent(id string, patch models.EventPatch) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadEvents()
	for i := range events {
		if events[i].ID == id {
			patch.Apply(&events[i])
			s.saveEvents(events)
			copied := events[i]
			return &copied
		}
	}
	return nil
}

// needsReseed guards against stale collections written by earlier seed
// formats: empty, or a first element with no coordinates or image, or too few
// events carrying coordinates.
func (s *Store) needsReseed(events []models.Event) bool {
	if len(events) == 0 {
		return true
	}
	if events[0].Coords == nil || events[0].Image == "" {
		return true
	}
	withCoords := 0
	for _, e := range events {
		if e.Coords != nil {
			withCoords++
		}
	}
	return float64(withCoords) < s.minCoordsFraction*float64(len(events))
}

// placeholderImage is deterministic per event id.
func placeholderImage(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/1000/600", id)
}

func effectiveTime(e models.Event) time.Time {
	if !e.CreatedAt.IsZero() {
		return e.CreatedAt
	}
	return e.Date
}

// --- persistence ---

func (s *Store) loadUsers() []models.User {
	var users []models.User
	if raw, ok := s.store.Get(kv.KeyMirrorUsers); ok {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			log.Printf("mirror: corrupt users payload discarded: %v", err)
			return nil
		}
	}
	return users
}

func (s *Store) saveUsers(users []models.User) {
	raw, err := json.Marshal(users)
	if err != nil {
		log.Printf("mirror: marshal users: %v", err)
		return
	}
	s.store.Set(kv.KeyMirrorUsers, string(raw))
}

func (s *Store) loadEvents() []models.Event {
	var events []models.Event
	if raw, ok := s.store.Get(kv.KeyMirrorEvents); ok {
		if err := json.Unmarshal([]byte(raw), &events); err != nil {
			log.Printf("mirror: corrupt events payload discarded: %v", err)
			return nil
		}
	}
	return events
}

func (s *Store) saveEvents(events []models.Event) {
	raw, err := json.Marshal(events)
	if err != nil {
		log.Printf("mirror: marshal events: %v", err)
		return
	}
	s.store.Set(kv.KeyMirrorEvents, string(raw))
}
