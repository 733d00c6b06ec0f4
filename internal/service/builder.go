// Package service contains the business logic for the Travel Planner API:
// the pure transformations that turn raw provider payloads into a normalized
// trip, and the planner that orchestrates the three provider fetches.
// No HTTP and no storage lives here — the planner depends on fetcher
// interfaces, and handlers decide what to do with the built trip.
package service

import (
	"github.com/akarrer/travel-planner/internal/domain"
	"github.com/akarrer/travel-planner/internal/provider"
)

// forecastIconBaseURL is where the weather service hosts its condition icons.
// Icon URLs are always synthesized from this base and the day's icon code;
// the payload itself never carries a usable URL.
const forecastIconBaseURL = "https://www.weatherbit.io/static/img/icons/"

// BuildForecastData compacts the raw daily-forecast payload into one
// ForecastRecord per day, in payload order. A nil or empty payload yields an
// empty slice, never nil.
func BuildForecastData(raw *provider.WeatherPayload) []domain.ForecastRecord {
	if raw == nil || len(raw.Data) == 0 {
		return []domain.ForecastRecord{}
	}
	records := make([]domain.ForecastRecord, 0, len(raw.Data))
	for _, day := range raw.Data {
		records = append(records, domain.ForecastRecord{
			Datetime:    day.Datetime,
			MaxTemp:     day.MaxTemp,
			MinTemp:     day.MinTemp,
			IconURL:     forecastIconBaseURL + day.Weather.Icon + ".png",
			Description: day.Weather.Description,
		})
	}
	return records
}

// RelevantForecasts filters the compacted forecasts down to the inclusive
// [departureDate, returnDate] window. All dates are normalized to
// YYYY-MM-DD first, so the comparisons are plain lexicographic string
// compares. The result is empty when there is no forecast data, the trip
// window is impossible (duration <= 0), or the departure date is already in
// the past relative to today.
//
// When the window is valid but the provider's forecast horizon does not
// reach it, a single synthetic record is returned: a copy of the first
// compacted forecast with its datetime forced to the departure date. The
// numbers on it may not match the actual departure-day weather, but it
// guarantees at least one forecast for every valid future trip.
func RelevantForecasts(forecasts []domain.ForecastRecord, duration int, departureDate, returnDate, today string) []domain.ForecastRecord {
	if len(forecasts) == 0 || duration <= 0 {
		return []domain.ForecastRecord{}
	}
	departure, okDeparture := domain.NormalizeISODate(departureDate)
	returnDay, okReturn := domain.NormalizeISODate(returnDate)
	if !okDeparture || !okReturn || departure < today {
		return []domain.ForecastRecord{}
	}

	window := make([]domain.ForecastRecord, 0, len(forecasts))
	for _, f := range forecasts {
		day, ok := domain.NormalizeISODate(f.Datetime)
		if ok && departure <= day && day <= returnDay {
			window = append(window, f)
		}
	}
	if len(window) == 0 {
		// f is a value copy, so overwriting the datetime cannot alias the
		// caller's slice.
		fallback := forecasts[0]
		fallback.Datetime = departure
		window = append(window, fallback)
	}
	return window
}

// BuildImageData selects the representative photo: the first hit of the raw
// result set, in original order, projected to its webformat fields. No hits
// means no image — callers render a placeholder, not an error.
func BuildImageData(raw *provider.ImagePayload) *domain.ImageRecord {
	if raw == nil || len(raw.Hits) == 0 {
		return nil
	}
	first := raw.Hits[0]
	return &domain.ImageRecord{
		URL:            first.WebformatURL,
		Width:          first.WebformatWidth,
		Height:         first.WebformatHeight,
		AttributedUser: first.User,
	}
}

// BuildTripData assembles the normalized Trip from the caller's inputs and
// whatever raw payloads the fetches produced. Either payload may be nil; the
// resulting trip simply carries no forecasts or no image. Duration and
// countdown are always computed here, never taken from the caller.
func BuildTripData(city, country, departureDate, returnDate string, weather *provider.WeatherPayload, image *provider.ImagePayload, today string) domain.Trip {
	duration := domain.CalculateDurationDays(departureDate, returnDate)
	return domain.Trip{
		City:          city,
		Country:       country,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Duration:      duration,
		Countdown:     domain.CalculateCountdownDays(today, departureDate),
		Forecasts:     RelevantForecasts(BuildForecastData(weather), duration, departureDate, returnDate, today),
		Image:         domain.Image{ImageRecord: BuildImageData(image)},
	}
}
