package ads

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

var sync *syncer.AdSync

// Init wires the handlers to the ad syncer.
func Init(s *syncer.AdSync) {
	sync = s
}

// GetAds lists every ad slot, active or not.
func GetAds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.SendResponse(w, http.StatusOK, sync.Ads(), "", nil)
}

// GetActiveAds lists only the slots currently running.
func GetActiveAds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.SendResponse(w, http.StatusOK, sync.ActiveAds(), "", nil)
}

// CreateAd publishes a new ad slot.
func CreateAd(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var a models.Ad
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}
	a.CreatedBy = middleware.RequesterID(r.Context())

	created := sync.Create(r.Context(), a)
	utils.SendResponse(w, http.StatusCreated, created, "Publicité créée", nil)
}

// UpdateAd applies a partial update to an ad slot.
func UpdateAd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch models.AdPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	updated := sync.Update(r.Context(), ps.ByName("id"), patch)
	if updated == nil {
		utils.RespondWithError(w, http.StatusNotFound, "ad not found")
		return
	}
	utils.SendResponse(w, http.StatusOK, updated, "Publicité mise à jour", nil)
}

// DeleteAd removes an ad slot.
func DeleteAd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sync.Delete(r.Context(), ps.ByName("id"))
	utils.SendResponse(w, http.StatusOK, nil, "Publicité supprimée", nil)
}

// RecordClick bumps the click counter on an ad. Best effort, the
// response never blocks on the remote write.
func RecordClick(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sync.RecordClick(r.Context(), ps.ByName("id"))
	utils.SendResponse(w, http.StatusOK, nil, "", nil)
}

// RecordView bumps the view counter on an ad.
func RecordView(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sync.RecordView(r.Context(), ps.ByName("id"))
	utils.SendResponse(w, http.StatusOK, nil, "", nil)
}
