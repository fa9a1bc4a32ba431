package syncer

import (
	"context"
	"log"

	"pdvstar/models"
)

// PassSync owns the in-memory pass collection used by the admin stats
// surface. Purchases flow through the session manager; Record keeps this
// collection in step with them.
type PassSync struct {
	base
	gw     PassGateway
	passes []models.AccessPass
}

func NewPassSync(gw PassGateway) *PassSync {
	return &PassSync{gw: gw}
}

func (s *PassSync) Load(ctx context.Context) {
	s.mu.Lock()
	s.state = Loading
	s.mu.Unlock()

	passes, err := s.gw.FetchAllPasses(ctx)
	if err != nil {
		passes = nil
		log.Printf("syncer: passes load failed, serving empty collection")
	}

	s.mu.Lock()
	s.passes = passes
	s.state = Ready
	s.mu.Unlock()
}

func (s *PassSync) Passes() []models.AccessPass {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AccessPass, len(s.passes))
	copy(out, s.passes)
	return out
}

// Record prepends a freshly purchased pass.
func (s *PassSync) Record(p models.AccessPass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passes = append([]models.AccessPass{p}, s.passes...)
}

// History lists one user's purchases, newest first. The remote store is
// authoritative; when it cannot answer, the in-memory collection is
// filtered instead.
func (s *PassSync) History(ctx context.Context, userID string) []models.AccessPass {
	if history, err := s.gw.FetchPassHistory(ctx, userID); err == nil {
		return history
	}
	log.Printf("syncer: pass history for %s served from memory", userID)
	var out []models.AccessPass
	for _, p := range s.Passes() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}
