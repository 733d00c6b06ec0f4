package handler

import "net/http"

// The proxy endpoints expose the three provider clients directly, so a
// browser client never has to hold the third-party API credentials itself.
// Unlike the aggregation pipeline, failures here are NOT downgraded: callers
// asked for exactly one payload and get the precise error when it cannot be
// fetched.

// GetGeoData handles GET /geodata?city=&country=.
func (s *Server) GetGeoData(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	payload, err := s.geo.Fetch(r.Context(), query.Get("city"), query.Get("country"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// GetWeather handles GET /weather?lat=&long=.
func (s *Server) GetWeather(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	payload, err := s.weather.Fetch(r.Context(), query.Get("lat"), query.Get("long"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// GetImageData handles GET /imagedata?loc=.
func (s *Server) GetImageData(w http.ResponseWriter, r *http.Request) {
	payload, err := s.image.Fetch(r.Context(), r.URL.Query().Get("loc"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
