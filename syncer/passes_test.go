package syncer

import (
	"context"
	"testing"
	"time"

	"pdvstar/models"
)

type fakePassGW struct {
	passes   []models.AccessPass
	fetchErr error
	histErr  error
}

func (f *fakePassGW) CreatePass(ctx context.Context, p models.AccessPass) (models.AccessPass, error) {
	return p, nil
}

func (f *fakePassGW) FetchAllPasses(ctx context.Context) ([]models.AccessPass, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.passes, nil
}

func (f *fakePassGW) FetchPassHistory(ctx context.Context, userID string) ([]models.AccessPass, error) {
	if f.histErr != nil {
		return nil, f.histErr
	}
	var out []models.AccessPass
	for _, p := range f.passes {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestPassLoadAndRecord(t *testing.T) {
	gw := &fakePassGW{passes: []models.AccessPass{{ID: "p1", UserID: "u1"}}}
	s := NewPassSync(gw)
	s.Load(context.Background())

	if len(s.Passes()) != 1 {
		t.Fatalf("passes = %d", len(s.Passes()))
	}

	s.Record(models.AccessPass{ID: "p2", UserID: "u2", PurchasedAt: time.Now()})
	got := s.Passes()
	if len(got) != 2 || got[0].ID != "p2" {
		t.Fatalf("fresh purchase not at the head: %#v", got)
	}
}

func TestPassHistoryFallsBackToMemory(t *testing.T) {
	gw := &fakePassGW{
		passes:  []models.AccessPass{{ID: "p1", UserID: "u1"}, {ID: "p2", UserID: "u2"}},
		histErr: errRemoteDown,
	}
	s := NewPassSync(gw)
	s.Load(context.Background())
	// Load succeeded before connectivity dropped; history still answers.
	gw.fetchErr = errRemoteDown

	history := s.History(context.Background(), "u1")
	if len(history) != 1 || history[0].ID != "p1" {
		t.Fatalf("history = %#v", history)
	}
}
