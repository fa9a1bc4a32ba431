package profile

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
	"pdvstar/utils"
)

var (
	users    *syncer.UserSync
	sessions *session.Manager
)

// Init wires the handlers to the user syncer and session manager.
func Init(u *syncer.UserSync, m *session.Manager) {
	users = u
	sessions = m
}

func currentUser(w http.ResponseWriter) *models.User {
	user := sessions.CurrentUser()
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "no active session")
	}
	return user
}

// UpdateProfile applies a partial update to the signed-in user and
// refreshes the stored session.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(w)
	if user == nil {
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	// Role changes go through the organizer signup flow, never a raw patch.
	patch.Role = nil

	updated := users.Update(r.Context(), user.ID, patch)
	if updated == nil {
		updated = user
		patch.Apply(updated)
	}
	sessions.SaveUser(*updated)
	utils.SendResponse(w, http.StatusOK, updated, "Profil mis à jour", nil)
}

// BecomeOrganizer upgrades the caller to the organizer role.
func BecomeOrganizer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(w)
	if user == nil {
		return
	}

	var req struct {
		SpaceName     string `json:"spaceName"`
		OrganizerName string `json:"organizerName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.SpaceName = strings.TrimSpace(req.SpaceName)
	if req.SpaceName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "spaceName is required")
		return
	}

	role := models.RoleOrganizer
	patch := models.UserPatch{
		Role:          &role,
		SpaceName:     &req.SpaceName,
		OrganizerName: &req.OrganizerName,
	}
	updated := users.Update(r.Context(), user.ID, patch)
	if updated == nil {
		updated = user
		patch.Apply(updated)
	}
	sessions.SaveUser(*updated)
	utils.SendResponse(w, http.StatusOK, updated, "Compte organisateur activé", nil)
}

// Follow adds an organizer to the caller's following list.
func Follow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleFollow(w, r, ps.ByName("id"), true)
}

// Unfollow removes an organizer from the caller's following list.
func Unfollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleFollow(w, r, ps.ByName("id"), false)
}

func toggleFollow(w http.ResponseWriter, r *http.Request, organizerID string, follow bool) {
	user := currentUser(w)
	if user == nil {
		return
	}

	following := make([]string, 0, len(user.Following)+1)
	for _, id := range user.Following {
		if id != organizerID {
			following = append(following, id)
		}
	}
	if follow {
		following = append(following, organizerID)
	}

	patch := models.UserPatch{Following: &following}
	updated := users.Update(r.Context(), user.ID, patch)
	if updated == nil {
		updated = user
		patch.Apply(updated)
	}
	sessions.SaveUser(*updated)
	utils.SendResponse(w, http.StatusOK, updated, "", nil)
}
