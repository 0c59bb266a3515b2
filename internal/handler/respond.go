package handler

import (
	"encoding/json"
	"net/http"

	"github.com/angeloszaimis/todo-service/internal/rejection"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError renders a handler-level outcome (conflict, unknown id)
// with the same body shape the failure mapper uses.
func writeDomainError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, rejection.Body{Code: code, Message: message})
}
