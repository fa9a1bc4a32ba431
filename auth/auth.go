package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"pdvstar/middleware"
	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/utils"
)

var sessions *session.Manager

// Init wires the handlers to the session manager.
func Init(m *session.Manager) {
	sessions = m
}

type authRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login authenticates by phone number. Unknown numbers get an account
// created on the fly, known numbers log straight in.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "phone is required")
		return
	}

	user := sessions.Authenticate(r.Context(), req.Phone, models.User{
		Name:  req.Name,
		Email: req.Email,
	})

	expiry := time.Now().Add(sessions.UserTTL())
	token, err := middleware.CreateToken(user.ID, user.Phone, user.Role, expiry)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	}, "Connexion réussie", nil)
}

// Logout discards the stored session.
func Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessions.Logout()
	utils.SendResponse(w, http.StatusOK, nil, "Déconnexion réussie", nil)
}

// Me returns the currently signed-in user, if the session is still valid.
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := sessions.CurrentUser()
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "no active session")
		return
	}
	utils.SendResponse(w, http.StatusOK, user, "", nil)
}
