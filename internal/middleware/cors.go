package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a CORS middleware restricted to the given origins.
// The planner UI only issues GET and POST requests, so those (plus the
// implicit OPTIONS preflight) are all that is allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return c.Handler
}
