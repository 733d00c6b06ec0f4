package middleware

import "net/http"

// DefaultMaxBodyBytes caps request bodies at 1 MiB, which is far above any
// legitimate trip payload.
const DefaultMaxBodyBytes int64 = 1 << 20

// NewMaxBodySizeHandler returns a middleware that rejects requests whose
// declared Content-Length exceeds limit with 413, and wraps the body with
// http.MaxBytesReader so chunked requests cannot exceed it either.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
