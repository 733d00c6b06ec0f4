package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/time/rate"

	"github.com/akarrer/travel-planner/internal/domain"
)

// countryCodePattern matches an ISO-3166 two-letter country code,
// case-insensitively.
var countryCodePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// GeoPayload is the raw geocoding search response. TotalResultsCount and
// Geonames double as the success signal: a 2xx response carrying neither is
// an application-level error whose message lives under Status.
type GeoPayload struct {
	TotalResultsCount *int       `json:"totalResultsCount,omitempty"`
	Geonames          []Geoname  `json:"geonames,omitempty"`
	Status            *GeoStatus `json:"status,omitempty"`
}

// Geoname is a single geocoding hit. Lat and Lng arrive as JSON strings from
// the live service but as bare numbers from some mirrors, so both are kept
// as json.Number until a caller asks for coordinates.
type Geoname struct {
	Name        string      `json:"name,omitempty"`
	CountryCode string      `json:"countryCode,omitempty"`
	Lat         json.Number `json:"lat"`
	Lng         json.Number `json:"lng"`
}

// GeoStatus is the application-level error envelope of the geocoding service.
type GeoStatus struct {
	Message string `json:"message"`
	Value   int    `json:"value"`
}

// FirstCoordinates returns the coordinate pair of the first hit, in original
// response order. ok is false when the result set is empty or the
// coordinates do not parse.
func (p *GeoPayload) FirstCoordinates() (domain.GeoResult, bool) {
	if p == nil || len(p.Geonames) == 0 {
		return domain.GeoResult{}, false
	}
	lat, errLat := p.Geonames[0].Lat.Float64()
	lng, errLng := p.Geonames[0].Lng.Float64()
	if errLat != nil || errLng != nil {
		return domain.GeoResult{}, false
	}
	return domain.GeoResult{Latitude: lat, Longitude: lng}, true
}

// GeoClient queries the geocoding service.
type GeoClient struct {
	client
	username string
}

// NewGeoClient constructs a GeoClient against baseURL, authenticating with
// the given account username. limiter may be nil to disable rate limiting.
func NewGeoClient(baseURL, username string, limiter *rate.Limiter) (*GeoClient, error) {
	c, err := newClient(baseURL, limiter)
	if err != nil {
		return nil, err
	}
	return &GeoClient{client: c, username: username}, nil
}

// Fetch looks up city (optionally constrained by a two-letter country code)
// and returns the raw geocoding payload. Parameter violations are reported
// as domain.ErrValidation before any network traffic.
func (g *GeoClient) Fetch(ctx context.Context, city, country string) (*GeoPayload, error) {
	if err := checkGeoParams(city, country); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("username", g.username)
	query.Set("lang", "EN")
	query.Set("maxRows", "1")
	query.Set("style", "short")
	query.Set("name", city)
	query.Set("country", country)

	var payload GeoPayload
	err := g.get(ctx, query, &payload, func(status int, _ []byte) error {
		return fmt.Errorf("%w: Geo service responded with HTTP error code %d", domain.ErrRemote, status)
	})
	if err != nil {
		return nil, err
	}

	if payload.TotalResultsCount == nil && payload.Geonames == nil {
		message := ""
		if payload.Status != nil {
			message = payload.Status.Message
		}
		return nil, fmt.Errorf("%w: Geo service responded with message: %s", domain.ErrRemote, message)
	}
	return &payload, nil
}

func checkGeoParams(city, country string) error {
	if strings.TrimSpace(city) == "" {
		return fmt.Errorf("%w: Param 'city' must not be empty", domain.ErrValidation)
	}
	if c := strings.TrimSpace(country); c != "" && !countryCodePattern.MatchString(c) {
		return fmt.Errorf("%w: Param 'country' must be a two-letter-code", domain.ErrValidation)
	}
	return nil
}
