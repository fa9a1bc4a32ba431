package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"pdvstar/kv"
	"pdvstar/mirror"
	"pdvstar/models"
	"pdvstar/syncer"
)

type stubGateway struct {
	events []models.Event
}

func (s *stubGateway) FetchEvents(ctx context.Context) ([]models.Event, error) {
	return s.events, nil
}

func (s *stubGateway) CreateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	return e, nil
}

func (s *stubGateway) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			patch.Apply(&e)
			return e, nil
		}
	}
	return models.Event{}, context.Canceled
}

func (s *stubGateway) DeleteEvent(ctx context.Context, id string) error { return nil }

func (s *stubGateway) SeedEvents(ctx context.Context, events []models.Event) ([]models.Event, error) {
	return events, nil
}

func setup(t *testing.T, stored []models.Event) {
	t.Helper()
	s := syncer.NewEventSync(&stubGateway{events: stored}, mirror.New(kv.NewMemory(), 0.8, 20))
	s.Load(context.Background())
	Init(s)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return body
}

func TestGetEventsHidesUnapproved(t *testing.T) {
	setup(t, []models.Event{
		{ID: "ev1", Title: "Approuvé", Status: models.EventApproved},
		{ID: "ev2", Title: "En attente", Status: models.EventPending},
		{ID: "ev3", Title: "Rejeté", Status: models.EventRejected},
	})

	rec := httptest.NewRecorder()
	GetEvents(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data := decode(t, rec)["data"].(map[string]any)
	list := data["events"].([]any)
	if len(list) != 1 {
		t.Fatalf("visible events = %d, want 1", len(list))
	}
	if data["state"] != "ready" {
		t.Fatalf("state = %v", data["state"])
	}
}

func TestGetEventNotFound(t *testing.T) {
	setup(t, []models.Event{{ID: "ev1", Status: models.EventApproved}})

	rec := httptest.NewRecorder()
	GetEvent(rec, httptest.NewRequest(http.MethodGet, "/api/events/missing", nil),
		httprouter.Params{{Key: "id", Value: "missing"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateEventRequiresTitle(t *testing.T) {
	setup(t, []models.Event{{ID: "ev1", Status: models.EventApproved}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"title":"  "}`))
	CreateEvent(rec, req, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestToggleRegistrationAdjustsCount(t *testing.T) {
	setup(t, []models.Event{{ID: "ev1", Status: models.EventApproved, ParticipantCount: 10}})

	rec := httptest.NewRecorder()
	ps := httprouter.Params{{Key: "id", Value: "ev1"}}
	ToggleRegistration(rec, httptest.NewRequest(http.MethodPost, "/api/events/ev1/register", nil), ps)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	data := decode(t, rec)["data"].(map[string]any)
	if data["isRegistered"] != true {
		t.Fatal("registration not applied")
	}
	if data["participantCount"].(float64) != 11 {
		t.Fatalf("participant count = %v, want 11", data["participantCount"])
	}

	// Toggling back decrements.
	rec = httptest.NewRecorder()
	ToggleRegistration(rec, httptest.NewRequest(http.MethodPost, "/api/events/ev1/register", nil), ps)
	data = decode(t, rec)["data"].(map[string]any)
	if data["isRegistered"] != false || data["participantCount"].(float64) != 10 {
		t.Fatalf("toggle back = %v / %v", data["isRegistered"], data["participantCount"])
	}
}
