package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/akarrer/travel-planner/internal/domain"
)

// writeJSON serializes v with a charset-qualified content type so clients
// never have to sniff the encoding.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// validation failures become 400s carrying the precise message, store
// misses become bodiless 404s, and remote-service failures become 502s.
// Anything else (transport errors included) is an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, unwrapMessage(err), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, domain.ErrRemote):
		http.Error(w, unwrapMessage(err), http.StatusBadGateway)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "validation error: Param 'city' must not be empty" →
// "Param 'city' must not be empty".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{
		domain.ErrValidation.Error() + ": ",
		domain.ErrRemote.Error() + ": ",
	} {
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
