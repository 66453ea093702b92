package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// Response is the envelope for every books endpoint.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Response{Status: statusSuccess, Message: message, Data: data})
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Response{Status: statusFail, Message: message})
}
