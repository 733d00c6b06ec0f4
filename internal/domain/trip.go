// Package domain contains the core data types for the Travel Planner API.
// This package has zero external dependencies and is imported by every other
// internal package (provider, service, repo, handler).
package domain

import "encoding/json"

// GeoResult is the coordinate pair extracted from the first entry of a
// geocoding response. An empty geocoding result set is not an error — the
// pipeline simply continues without coordinates.
type GeoResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ForecastRecord is one compacted daily forecast. IconURL is always
// synthesized from the provider's icon code and a fixed base URL, never
// taken from the payload directly.
type ForecastRecord struct {
	Datetime    string  `json:"datetime"`
	MaxTemp     float64 `json:"max_temp"`
	MinTemp     float64 `json:"min_temp"`
	IconURL     string  `json:"icon"`
	Description string  `json:"description"`
}

// ImageRecord is the single representative landmark photo kept per trip:
// the first hit of the image search, projected to its webformat fields.
type ImageRecord struct {
	URL            string `json:"url"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	AttributedUser string `json:"user"`
}

// Image wraps an optional ImageRecord so that "no image available"
// serializes as an empty JSON object rather than null. Clients probe for
// the url field and fall back to a placeholder when it is absent.
type Image struct {
	*ImageRecord
}

// MarshalJSON renders a missing image as {}.
func (i Image) MarshalJSON() ([]byte, error) {
	if i.ImageRecord == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(i.ImageRecord)
}

// UnmarshalJSON accepts {} as "no image".
func (i *Image) UnmarshalJSON(data []byte) error {
	var rec ImageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec == (ImageRecord{}) {
		i.ImageRecord = nil
		return nil
	}
	i.ImageRecord = &rec
	return nil
}

// Trip is the normalized record produced by one aggregation pass.
// Duration and Countdown are always computed from the dates, never supplied
// by the caller. Forecasts is empty when no weather data was obtainable or
// none fall within the trip window. A Trip is built fresh per request and
// not mutated afterwards.
type Trip struct {
	City          string           `json:"city"`
	Country       string           `json:"country"`
	DepartureDate string           `json:"departureDate"`
	ReturnDate    string           `json:"returnDate"`
	Duration      int              `json:"duration"`
	Countdown     int              `json:"countdown"`
	Forecasts     []ForecastRecord `json:"forecasts"`
	Image         Image            `json:"image"`
}
