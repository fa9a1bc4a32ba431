package passes

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"pdvstar/models"
	"pdvstar/session"
	"pdvstar/syncer"
	"pdvstar/utils"
)

var (
	sessions *session.Manager
	sync     *syncer.PassSync
)

// Init wires the handlers to the session manager and the pass syncer.
func Init(m *session.Manager, s *syncer.PassSync) {
	sessions = m
	sync = s
}

// GetCatalog returns the pass tiers and accepted payment methods.
func GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tiers := make([]models.PassTier, 0, len(models.PassCatalog))
	for _, t := range models.PassCatalog {
		tiers = append(tiers, t)
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Price < tiers[j].Price })

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"tiers":          tiers,
		"paymentMethods": models.PaymentMethods,
	}, "", nil)
}

type purchaseRequest struct {
	PassType      string `json:"passType"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentRef    string `json:"paymentRef"`
}

// Purchase buys a pass for the signed-in user.
func Purchase(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.PaymentRef == "" {
		req.PaymentRef = uuid.NewString()
	}

	pass, err := sessions.BuyPass(r.Context(), req.PassType, req.PaymentMethod, req.PaymentRef)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, session.ErrNoSession) {
			status = http.StatusUnauthorized
		}
		utils.SendResponse(w, status, nil, "", err)
		return
	}
	sync.Record(*pass)
	utils.SendResponse(w, http.StatusCreated, pass, "Pass activé", nil)
}

// GetActivePass returns the caller's current entitlement, if any.
func GetActivePass(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	pass := sessions.ActivePass(r.Context())
	utils.SendResponse(w, http.StatusOK, map[string]any{
		"pass":   pass,
		"active": pass != nil,
	}, "", nil)
}

// GetHistory lists the caller's past purchases, newest first.
func GetHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := sessions.CurrentUser()
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "no active session")
		return
	}

	history := sync.History(r.Context(), user.ID)
	if history == nil {
		history = []models.AccessPass{}
	}
	utils.SendResponse(w, http.StatusOK, history, "", nil)
}
