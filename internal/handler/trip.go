package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/akarrer/travel-planner/internal/domain"
)

// emptyBodyMessage is the plain-text 400 body for trip creation without data.
const emptyBodyMessage = "No trip data provided!"

// ListTrips handles GET /trips.
// It returns every stored record in insertion order.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GetTrip handles GET /trips/{id}.
// A miss is a bodiless 404.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	record, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// CreateTrip handles POST /trips.
// The store is deliberately schema-agnostic: any non-empty JSON object is
// accepted, assigned an id, and announced via the Location header.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil || len(data) == 0 {
		http.Error(w, emptyBodyMessage, http.StatusBadRequest)
		return
	}

	record, err := s.store.Create(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", collectionURL(r, "/trips")+"/"+record["id"].(string))
	writeJSON(w, http.StatusCreated, record)
}

// planRequest is the body of POST /trips/plan.
type planRequest struct {
	City          string `json:"city"`
	Country       string `json:"country"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate"`
}

// PlanTrip handles POST /trips/plan: it runs the full aggregation pipeline
// for the requested trip and stores the result. Provider failures do not
// fail the request — the stored trip simply carries partial data.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, emptyBodyMessage, http.StatusBadRequest)
		return
	}

	trip := s.planner.CollectTravelInfo(r.Context(), req.City, req.Country, req.DepartureDate, req.ReturnDate)
	data, err := tripToRecord(trip)
	if err != nil {
		writeError(w, err)
		return
	}

	record, err := s.store.Create(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", collectionURL(r, "/trips")+"/"+record["id"].(string))
	writeJSON(w, http.StatusCreated, record)
}

// collectionURL rebuilds the absolute URL of the given collection as the
// client requested it, for use in Location headers.
func collectionURL(r *http.Request, path string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + strings.TrimSuffix(path, "/")
}

// tripToRecord converts a normalized trip into the generic object shape the
// store persists.
func tripToRecord(trip domain.Trip) (map[string]any, error) {
	raw, err := json.Marshal(trip)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
