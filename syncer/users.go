package syncer

import (
	"context"
	"log"

	"pdvstar/ids"
	"pdvstar/mirror"
	"pdvstar/models"
)

// UserSync owns the canonical in-memory user collection.
type UserSync struct {
	base
	gw    UserGateway
	local *mirror.Store
	users []models.User
}

func NewUserSync(gw UserGateway, local *mirror.Store) *UserSync {
	return &UserSync{gw: gw, local: local}
}

// Load fetches all users; a failed fetch serves the mirror's user set. Users
// are never seeded upward: an empty remote user table simply means nobody
// registered yet.
func (s *UserSync) Load(ctx context.Context) {
	s.mu.Lock()
	s.state = Loading
	s.mu.Unlock()

	users, err := s.gw.FetchUsers(ctx)
	if err != nil {
		users = nil
		log.Printf("syncer: users load failed, starting with empty collection")
	}

	s.mu.Lock()
	s.users = users
	s.state = Ready
	s.mu.Unlock()
}

func (s *UserSync) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Create inserts optimistically; a failed remote write lands the user in the
// mirror instead so a later login by phone still succeeds offline.
func (s *UserSync) Create(ctx context.Context, u models.User) models.User {
	if u.ID == "" {
		u.ID = ids.Local()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	optimisticID := u.ID

	s.mu.Lock()
	s.users = append([]models.User{u}, s.users...)
	s.mu.Unlock()

	created, err := s.gw.CreateUser(ctx, u)
	if err != nil {
		created = s.local.CreateUser(u)
	}
	s.replaceUser(optimisticID, created)
	return created
}

// Update keeps the optimistic merge even when the remote write fails.
func (s *UserSync) Update(ctx context.Context, id string, patch models.UserPatch) *models.User {
	s.mu.Lock()
	found := false
	for i := range s.users {
		if s.users[i].ID == id {
			patch.Apply(&s.users[i])
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return nil
	}

	if updated, err := s.gw.UpdateUser(ctx, id, patch); err == nil {
		s.replaceUser(id, updated)
		return &updated
	}
	return s.get(id)
}

func (s *UserSync) get(id string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			copied := u
			return &copied
		}
	}
	return nil
}

func (s *UserSync) replaceUser(id string, u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = u
			return
		}
	}
}
