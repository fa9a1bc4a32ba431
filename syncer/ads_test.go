package syncer

import (
	"context"
	"testing"

	"pdvstar/models"
)

type fakeAdGW struct {
	ads       []models.Ad
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error

	clickCalls int
	viewCalls  int
}

func (f *fakeAdGW) FetchAds(ctx context.Context) ([]models.Ad, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.ads, nil
}

func (f *fakeAdGW) FetchActiveAds(ctx context.Context) ([]models.Ad, error) {
	return f.FetchAds(ctx)
}

func (f *fakeAdGW) CreateAd(ctx context.Context, a models.Ad) (models.Ad, error) {
	if f.createErr != nil {
		return models.Ad{}, f.createErr
	}
	return a, nil
}

func (f *fakeAdGW) UpdateAd(ctx context.Context, id string, patch models.AdPatch) (models.Ad, error) {
	if f.updateErr != nil {
		return models.Ad{}, f.updateErr
	}
	for _, a := range f.ads {
		if a.ID == id {
			patch.Apply(&a)
			return a, nil
		}
	}
	return models.Ad{}, errRemoteDown
}

func (f *fakeAdGW) DeleteAd(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeAdGW) IncrementAdClick(ctx context.Context, id string) { f.clickCalls++ }

func (f *fakeAdGW) IncrementAdView(ctx context.Context, id string) { f.viewCalls++ }

func TestAdLoadFailureServesEmpty(t *testing.T) {
	s := NewAdSync(&fakeAdGW{fetchErr: errRemoteDown})
	s.Load(context.Background())
	if len(s.Ads()) != 0 {
		t.Fatalf("ads = %d, want 0", len(s.Ads()))
	}
}

func TestActiveAdsFilter(t *testing.T) {
	s := NewAdSync(&fakeAdGW{ads: []models.Ad{
		{ID: "ad1", IsActive: true, Position: 1},
		{ID: "ad2", IsActive: false, Position: 2},
		{ID: "ad3", IsActive: true, Position: 3},
	}})
	s.Load(context.Background())

	active := s.ActiveAds()
	if len(active) != 2 {
		t.Fatalf("active ads = %d, want 2", len(active))
	}
	if active[0].ID != "ad1" || active[1].ID != "ad3" {
		t.Fatalf("position order lost: %q, %q", active[0].ID, active[1].ID)
	}
}

func TestAdCreateFailureKeepsOptimisticEntry(t *testing.T) {
	s := NewAdSync(&fakeAdGW{createErr: errRemoteDown})
	s.Load(context.Background())

	created := s.Create(context.Background(), models.Ad{Title: "Promo"})
	if len(s.Ads()) != 1 {
		t.Fatalf("ads = %d, want the optimistic entry", len(s.Ads()))
	}
	if s.Ads()[0].ID != created.ID {
		t.Fatal("optimistic entry missing")
	}
}

func TestAdCountersBumpLocallyAndRemotely(t *testing.T) {
	gw := &fakeAdGW{ads: []models.Ad{{ID: "ad1"}}}
	s := NewAdSync(gw)
	s.Load(context.Background())

	s.RecordClick(context.Background(), "ad1")
	s.RecordClick(context.Background(), "ad1")
	s.RecordView(context.Background(), "ad1")

	a := s.Ads()[0]
	if a.ClickCount != 2 || a.ViewCount != 1 {
		t.Fatalf("counters = %d clicks, %d views", a.ClickCount, a.ViewCount)
	}
	if gw.clickCalls != 2 || gw.viewCalls != 1 {
		t.Fatalf("gateway calls = %d clicks, %d views", gw.clickCalls, gw.viewCalls)
	}
}
