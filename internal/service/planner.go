package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akarrer/travel-planner/internal/domain"
	"github.com/akarrer/travel-planner/internal/provider"
)

// GeoFetcher, WeatherFetcher and ImageFetcher describe the three provider
// operations the planner depends on. Defining the interfaces here (in the
// consumer package) lets planner tests inject doubles without touching the
// network clients.
type GeoFetcher interface {
	Fetch(ctx context.Context, city, country string) (*provider.GeoPayload, error)
}

type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon string) (*provider.WeatherPayload, error)
}

type ImageFetcher interface {
	Fetch(ctx context.Context, location string) (*provider.ImagePayload, error)
}

// Planner runs the best-effort trip aggregation pass: geocode the city,
// then fetch forecasts and a landmark photo for its coordinates, then build
// a normalized trip from whatever was gathered.
type Planner struct {
	geo     GeoFetcher
	weather WeatherFetcher
	image   ImageFetcher
	now     func() time.Time
	log     *slog.Logger
}

// NewPlanner constructs a Planner. The now function is the planner's clock
// (pass time.Now in production); it anchors countdown and forecast-window
// calculations.
func NewPlanner(geo GeoFetcher, weather WeatherFetcher, image ImageFetcher, now func() time.Time, log *slog.Logger) *Planner {
	return &Planner{geo: geo, weather: weather, image: image, now: now, log: log}
}

// CollectTravelInfo aggregates geo, weather and image data for one trip.
// Geo resolves first; weather and image then run concurrently on its
// coordinates. Every provider failure is logged and downgraded to missing
// data — a trip is always returned, partial if need be. That downgrade
// happens only here: the providers themselves report their errors faithfully.
func (p *Planner) CollectTravelInfo(ctx context.Context, city, country, departureDate, returnDate string) domain.Trip {
	log := p.log.With("collect_id", uuid.NewString(), "city", city)

	var weatherPayload *provider.WeatherPayload
	var imagePayload *provider.ImagePayload

	geoPayload, err := p.geo.Fetch(ctx, city, country)
	if err != nil {
		log.Warn("geo lookup failed, continuing with partial data", "error", err)
	} else if coords, ok := geoPayload.FirstCoordinates(); !ok {
		log.Warn("geo lookup yielded no coordinates, continuing with partial data")
	} else {
		lat := strconv.FormatFloat(coords.Latitude, 'f', -1, 64)
		lon := strconv.FormatFloat(coords.Longitude, 'f', -1, 64)

		// The two fetches are independent; nothing downstream cares about
		// their relative completion order. Each closure swallows its own
		// failure, so the group never cancels the sibling fetch.
		var group errgroup.Group
		group.Go(func() error {
			w, err := p.weather.Fetch(ctx, lat, lon)
			if err != nil {
				log.Warn("weather fetch failed, continuing with partial data", "error", err)
				return nil
			}
			weatherPayload = w
			return nil
		})
		group.Go(func() error {
			img, err := p.image.Fetch(ctx, city)
			if err != nil {
				log.Warn("image fetch failed, continuing with partial data", "error", err)
				return nil
			}
			imagePayload = img
			return nil
		})
		_ = group.Wait()
	}

	today := p.now().Format("2006-01-02")
	return BuildTripData(city, country, departureDate, returnDate, weatherPayload, imagePayload, today)
}
