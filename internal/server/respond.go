package server

import (
	"encoding/json"
	"log"
	"net/http"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, httpStatus int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondSuccess(w http.ResponseWriter, httpStatus int, message string, data any) {
	writeJSON(w, httpStatus, envelope{Status: "success", Message: message, Data: data})
}

func respondError(w http.ResponseWriter, httpStatus int, message string) {
	writeJSON(w, httpStatus, envelope{Status: "error", Message: message})
}

func respondValidation(w http.ResponseWriter, message string, fieldErrors any) {
	writeJSON(w, http.StatusBadRequest, envelope{Status: "error", Message: message, Errors: fieldErrors})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}
