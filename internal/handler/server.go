// Package handler implements the HTTP handlers for the Travel Planner API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, proxy.go, trip.go) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/akarrer/travel-planner/internal/domain"
	"github.com/akarrer/travel-planner/internal/repo"
	"github.com/akarrer/travel-planner/internal/service"
)

// TripPlanner defines the aggregation operation the trip-planning handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a canned planner without touching the network.
type TripPlanner interface {
	CollectTravelInfo(ctx context.Context, city, country, departureDate, returnDate string) domain.Trip
}

// Server holds the dependencies of all API endpoints: the planner for the
// aggregation pipeline, the trip store, and the three provider clients that
// back the direct proxy endpoints.
type Server struct {
	planner TripPlanner
	store   repo.TripStore
	geo     service.GeoFetcher
	weather service.WeatherFetcher
	image   service.ImageFetcher
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner TripPlanner, store repo.TripStore, geo service.GeoFetcher, weather service.WeatherFetcher, image service.ImageFetcher) *Server {
	return &Server{planner: planner, store: store, geo: geo, weather: weather, image: image}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/geodata", s.GetGeoData)
	r.Get("/weather", s.GetWeather)
	r.Get("/imagedata", s.GetImageData)
	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Post("/plan", s.PlanTrip)
		r.Get("/{id}", s.GetTrip)
	})
	return r
}
