package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
	"pdvstar/utils"
)

var (
	sessions *session.Manager
	events   *syncer.EventSync
	users    *syncer.UserSync
	passes   *syncer.PassSync
)

// Init wires the handlers to the session manager and the syncers.
func Init(m *session.Manager, e *syncer.EventSync, u *syncer.UserSync, p *syncer.PassSync) {
	sessions = m
	events = e
	users = u
	passes = p
}

// RequireAdmin blocks routes for callers without an admin session or an
// organizer account.
func RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !sessions.AdminRouteAllowed() {
			utils.RespondWithError(w, http.StatusForbidden, "accès refusé")
			return
		}
		next(w, r, ps)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login opens an admin session from credentials.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if !sessions.AdminLogin(req.Username, req.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, sessions.LoginError())
		return
	}
	utils.SendResponse(w, http.StatusOK, map[string]bool{"authenticated": true}, "Connexion réussie", nil)
}

// Logout closes the admin session.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessions.AdminLogout()
	utils.SendResponse(w, http.StatusOK, nil, "Déconnexion réussie", nil)
}

// Status reports whether an admin session is currently valid.
func Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.SendResponse(w, http.StatusOK, map[string]bool{
		"authenticated": sessions.IsAdminAuthenticated(),
	}, "", nil)
}

// ApproveEvent moves a pending event to the approved state.
func ApproveEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status := models.EventApproved
	reason := ""
	updated := events.Update(r.Context(), ps.ByName("id"), models.EventPatch{
		Status:          &status,
		RejectionReason: &reason,
	})
	if updated == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Événement approuvé", nil)
}

// RejectEvent marks an event rejected with a reason for the organizer.
func RejectEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	status := models.EventRejected
	updated := events.Update(r.Context(), ps.ByName("id"), models.EventPatch{
		Status:          &status,
		RejectionReason: &req.Reason,
	})
	if updated == nil {
		utils.RespondWithError(w, http.StatusNotFound, "event not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Événement rejeté", nil)
}

// Stats aggregates counters for the dashboard.
func Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	allEvents := events.Events()
	pending := 0
	for _, e := range allEvents {
		if e.Status == models.EventPending {
			pending++
		}
	}

	now := time.Now()
	allPasses := passes.Passes()
	var revenue float64
	active := 0
	for _, p := range allPasses {
		if tier, ok := models.PassCatalog[p.PassType]; ok {
			revenue += tier.Price
		}
		if p.IsValid(now) {
			active++
		}
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"events":        len(allEvents),
		"pendingEvents": pending,
		"users":         len(users.Users()),
		"passesSold":    len(allPasses),
		"activePasses":  active,
		"revenue":       revenue,
	}, "", nil)
}
