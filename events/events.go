package events

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"pdvstar/middleware"
	"pdvstar/models"
	"pdvstar/syncer"
	"pdvstar/utils"
)

var sync *syncer.EventSync

// Init wires the handlers to the event syncer.
func Init(s *syncer.EventSync) {
	sync = s
}

// GetEvents lists the feed. Visitors only see approved events, admins
// can ask for everything with ?all=true.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	all := r.URL.Query().Get("all") == "true" && middleware.RequesterRole(r.Context()) == models.RoleAdmin

	list := sync.Events()
	if !all {
		filtered := make([]models.Event, 0, len(list))
		for _, e := range list {
			if e.Status == models.EventApproved {
				filtered = append(filtered, e)
			}
		}
		list = filtered
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"events": list,
		"state":  sync.State().String(),
	}, "", nil)
}

// GetEvent returns a single event by id.
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	e := sync.Get(ps.ByName("id"))
	if e == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, e, "", nil)
}

// CreateEvent publishes a new event owned by the caller.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var e models.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}
	e.CreatedBy = middleware.RequesterID(r.Context())

	created := sync.Create(r.Context(), e)
	utils.SendResponse(w, http.StatusCreated, created, "Événement créé", nil)
}

// UpdateEvent applies a partial update to an event.
func UpdateEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	updated := sync.Update(r.Context(), ps.ByName("id"), patch)
	if updated == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Événement mis à jour", nil)
}

// ToggleRegistration flips the caller's registration on an event and
// keeps the participant counter in step.
func ToggleRegistration(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	e := sync.Get(ps.ByName("id"))
	if e == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}

	registered := !e.IsRegistered
	count := e.ParticipantCount
	if registered {
		count++
	} else if count > 0 {
		count--
	}
	patch := models.EventPatch{
		IsRegistered:     &registered,
		ParticipantCount: &count,
	}
	updated := sync.Update(r.Context(), e.ID, patch)
	utils.SendResponse(w, http.StatusOK, updated, "", nil)
}

// DeleteEvent removes an event.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if sync.Get(ps.ByName("id")) == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}
	sync.Delete(r.Context(), ps.ByName("id"))
	utils.SendResponse(w, http.StatusOK, nil, "Événement supprimé", nil)
}
