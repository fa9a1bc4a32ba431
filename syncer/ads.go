package syncer

import (
	"context"
	"log"

	"pdvstar/ids"
	"pdvstar/models"
)

// AdSync owns the canonical in-memory ad collection. Ads have no mirror
// dataset: a failed load serves an empty collection and failed mutations
// keep their optimistic entries without durable backing.
type AdSync struct {
	base
	gw  AdGateway
	ads []models.Ad
}

func NewAdSync(gw AdGateway) *AdSync {
	return &AdSync{gw: gw}
}

func (s *AdSync) Load(ctx context.Context) {
	s.mu.Lock()
	s.state = Loading
	s.mu.Unlock()

	ads, err := s.gw.FetchAds(ctx)
	if err != nil {
		ads = nil
		log.Printf("syncer: ads load failed, serving empty collection")
	}

	s.mu.Lock()
	s.ads = ads
	s.state = Ready
	s.mu.Unlock()
}

func (s *AdSync) Ads() []models.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ad, len(s.ads))
	copy(out, s.ads)
	return out
}

// ActiveAds filters the canonical collection on the active flag, position
// order preserved.
func (s *AdSync) ActiveAds() []models.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Ad
	for _, a := range s.ads {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

func (s *AdSync) Create(ctx context.Context, a models.Ad) models.Ad {
	if a.ID == "" {
		a.ID = ids.Local()
	}
	optimisticID := a.ID

	s.mu.Lock()
	s.ads = append(s.ads, a)
	s.mu.Unlock()

	created, err := s.gw.CreateAd(ctx, a)
	if err != nil {
		// No durable fallback for ads; the optimistic entry stands.
		return a
	}
	s.replaceAd(optimisticID, created)
	return created
}

func (s *AdSync) Update(ctx context.Context, id string, patch models.AdPatch) *models.Ad {
	s.mu.Lock()
	found := false
	for i := range s.ads {
		if s.ads[i].ID == id {
			patch.Apply(&s.ads[i])
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return nil
	}

	if updated, err := s.gw.UpdateAd(ctx, id, patch); err == nil {
		s.replaceAd(id, updated)
		return &updated
	}
	return s.get(id)
}

func (s *AdSync) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.ads[:0]
	for _, a := range s.ads {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.ads = kept
	s.mu.Unlock()

	if err := s.gw.DeleteAd(ctx, id); err != nil {
		log.Printf("syncer: delete ad %s uncommitted (remote failed)", id)
	}
}

// RecordClick bumps the counter optimistically and fires the remote
// read-increment-write; the counters stay monotonically non-decreasing
// locally either way.
func (s *AdSync) RecordClick(ctx context.Context, id string) {
	s.bump(id, func(a *models.Ad) { a.ClickCount++ })
	s.gw.IncrementAdClick(ctx, id)
}

func (s *AdSync) RecordView(ctx context.Context, id string) {
	s.bump(id, func(a *models.Ad) { a.ViewCount++ })
	s.gw.IncrementAdView(ctx, id)
}

func (s *AdSync) bump(id string, f func(*models.Ad)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID == id {
			f(&s.ads[i])
			return
		}
	}
}

func (s *AdSync) get(id string) *models.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.ads {
		if a.ID == id {
			copied := a
			return &copied
		}
	}
	return nil
}

func (s *AdSync) replaceAd(id string, a models.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ads {
		if s.ads[i].ID == id {
			s.ads[i] = a
			return
		}
	}
}
