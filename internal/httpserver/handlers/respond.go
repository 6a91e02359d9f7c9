package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v with the given status. Encoding failures after the
// header is written can only be logged by the access log middleware.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
