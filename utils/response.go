package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondWithJSON writes v as a JSON body with the given status code.
func RespondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// RespondWithError writes a JSON error envelope.
func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, map[string]string{"error": message})
}

// SendResponse wraps payloads in the {ok, data, message} envelope the
// frontend expects.
func SendResponse(w http.ResponseWriter, status int, data any, message string, err error) {
	resp := map[string]any{"ok": err == nil}
	if data != nil {
		resp["data"] = data
	}
	if message != "" {
		resp["message"] = message
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	RespondWithJSON(w, status, resp)
}
