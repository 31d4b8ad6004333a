package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

const serverHeader = "Invest API v0.0.1"

type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

type validationEnvelope struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

// writeJSON serializes content with the fixed response headers. Every
// response, success or failure, goes through here.
func writeJSON(w http.ResponseWriter, status int, content any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Server", serverHeader)
	h.Set("Cache-Control", "no-cache, no-store")
	h.Set("Expires", "0")
	h.Set("Pragma", "no-cache")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(content)
}

// respondOK writes a 200 envelope. A nil data renders as JSON null.
func respondOK(w http.ResponseWriter, data any, message string) {
	if message == "" {
		message = "OK"
	}
	writeJSON(w, http.StatusOK, envelope{Data: data, Message: message})
}

// respondError writes a generic error envelope. An empty message falls
// back to the capitalized status phrase, e.g. "Not found".
func respondError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = capitalize(http.StatusText(status))
	}
	writeJSON(w, status, errorEnvelope{Message: message})
}

// respondValidationFailed writes the 422 field-error envelope.
func respondValidationFailed(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, validationEnvelope{
		Errors:  fields,
		Message: "Input payload validation failed",
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
