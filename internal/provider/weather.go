package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/akarrer/travel-planner/internal/domain"
)

// forecastDays is the forecast horizon requested from the weather service.
// 16 days is the longest daily window the API offers.
const forecastDays = "16"

// WeatherPayload is the raw daily-forecast response. Error carries the
// application-level message some deployments return with a 2xx status.
type WeatherPayload struct {
	Data     []WeatherDay `json:"data,omitempty"`
	CityName string       `json:"city_name,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// WeatherDay is one raw daily forecast record.
type WeatherDay struct {
	Datetime string         `json:"datetime"`
	MaxTemp  float64        `json:"max_temp"`
	MinTemp  float64        `json:"min_temp"`
	Weather  WeatherDetails `json:"weather"`
}

// WeatherDetails holds the condition fields nested inside each daily record.
type WeatherDetails struct {
	Icon        string `json:"icon"`
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// WeatherClient queries the daily weather forecast service.
type WeatherClient struct {
	client
	apiKey string
}

// NewWeatherClient constructs a WeatherClient against baseURL.
// limiter may be nil to disable rate limiting.
func NewWeatherClient(baseURL, apiKey string, limiter *rate.Limiter) (*WeatherClient, error) {
	c, err := newClient(baseURL, limiter)
	if err != nil {
		return nil, err
	}
	return &WeatherClient{client: c, apiKey: apiKey}, nil
}

// Fetch retrieves the 16-day daily forecast for the given coordinates.
// Both lat and lon must parse as finite numbers; a violation of either is
// reported as one combined domain.ErrValidation before any network traffic.
func (w *WeatherClient) Fetch(ctx context.Context, lat, lon string) (*WeatherPayload, error) {
	if err := checkCoordinates(lat, lon); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("key", w.apiKey)
	query.Set("lang", "EN")
	query.Set("units", "M")
	query.Set("days", forecastDays)
	query.Set("lat", lat)
	query.Set("lon", lon)

	var payload WeatherPayload
	err := w.get(ctx, query, &payload, func(status int, body []byte) error {
		if message := weatherErrorMessage(body); message != "" {
			return fmt.Errorf("%w: Weather service responded with HTTP code %d and message %s",
				domain.ErrRemote, status, message)
		}
		return fmt.Errorf("%w: Weather service responded with HTTP code %d and no particular message",
			domain.ErrRemote, status)
	})
	if err != nil {
		return nil, err
	}

	if payload.Error != "" && payload.Data == nil {
		return nil, fmt.Errorf("%w: Weather service responded with message: %s", domain.ErrRemote, payload.Error)
	}
	return &payload, nil
}

// weatherErrorMessage pulls the application-level message out of an error
// response body. The service wraps it in a JSON object under "error".
func weatherErrorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Error
}

func checkCoordinates(lat, lon string) error {
	latVal, errLat := strconv.ParseFloat(lat, 64)
	lonVal, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil ||
		math.IsInf(latVal, 0) || math.IsNaN(latVal) ||
		math.IsInf(lonVal, 0) || math.IsNaN(lonVal) {
		return fmt.Errorf("%w: Params 'latitude' and 'longitude' must both be numbers", domain.ErrValidation)
	}
	return nil
}
