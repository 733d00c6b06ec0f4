package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarrer/travel-planner/internal/domain"
	"github.com/akarrer/travel-planner/internal/provider"
)

// geoServer spins up a test server answering every request with status and
// body, and records the query of the last request it saw.
func geoServer(t *testing.T, status int, body string) (*provider.GeoClient, *url.Values) {
	t.Helper()
	var lastQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := provider.NewGeoClient(srv.URL, "testuser", nil)
	require.NoError(t, err)
	return client, &lastQuery
}

func TestNewGeoClient_MalformedBaseURL(t *testing.T) {
	_, err := provider.NewGeoClient("://not-a-url", "testuser", nil)
	assert.Error(t, err)

	_, err = provider.NewGeoClient("relative/path", "testuser", nil)
	assert.Error(t, err)
}

func TestGeoClient_Fetch_ValidationErrors(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK, `{}`)

	tests := []struct {
		name    string
		city    string
		country string
		message string
	}{
		{"empty city", "", "DE", "Param 'city' must not be empty"},
		{"whitespace city", "   ", "DE", "Param 'city' must not be empty"},
		{"country too long", "Berlin", "DUCK", "Param 'country' must be a two-letter-code"},
		{"country with digit", "Berlin", "D1", "Param 'country' must be a two-letter-code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Fetch(context.Background(), tt.city, tt.country)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func TestGeoClient_Fetch_BuildsQuery(t *testing.T) {
	client, query := geoServer(t, http.StatusOK,
		`{"totalResultsCount":1,"geonames":[{"name":"Berlin","lat":"52.52","lng":"13.41"}]}`)

	_, err := client.Fetch(context.Background(), "Berlin", "de")

	require.NoError(t, err)
	assert.Equal(t, "testuser", query.Get("username"))
	assert.Equal(t, "EN", query.Get("lang"))
	assert.Equal(t, "1", query.Get("maxRows"))
	assert.Equal(t, "short", query.Get("style"))
	assert.Equal(t, "Berlin", query.Get("name"))
	// Country codes are case-insensitive and passed through as supplied.
	assert.Equal(t, "de", query.Get("country"))
}

func TestGeoClient_Fetch_Success(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK,
		`{"totalResultsCount":1,"geonames":[{"name":"Berlin","countryCode":"DE","lat":"52.52","lng":"13.41"}]}`)

	payload, err := client.Fetch(context.Background(), "Berlin", "DE")

	require.NoError(t, err)
	require.Len(t, payload.Geonames, 1)

	coords, ok := payload.FirstCoordinates()
	require.True(t, ok)
	assert.InDelta(t, 52.52, coords.Latitude, 1e-9)
	assert.InDelta(t, 13.41, coords.Longitude, 1e-9)
}

// TestGeoClient_Fetch_NumericCoordinates verifies that coordinate values
// arriving as bare JSON numbers parse just as well as quoted strings.
func TestGeoClient_Fetch_NumericCoordinates(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK,
		`{"totalResultsCount":1,"geonames":[{"lat":44,"lng":33}]}`)

	payload, err := client.Fetch(context.Background(), "Berlin", "DE")

	require.NoError(t, err)
	coords, ok := payload.FirstCoordinates()
	require.True(t, ok)
	assert.InDelta(t, 44.0, coords.Latitude, 1e-9)
	assert.InDelta(t, 33.0, coords.Longitude, 1e-9)
}

func TestGeoClient_Fetch_EmptyResultSet(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK, `{"totalResultsCount":0,"geonames":[]}`)

	payload, err := client.Fetch(context.Background(), "Nowhereville", "")

	// An empty result set is a successful response; the caller decides what
	// missing coordinates mean.
	require.NoError(t, err)
	_, ok := payload.FirstCoordinates()
	assert.False(t, ok)
}

func TestGeoClient_Fetch_HTTPError(t *testing.T) {
	client, _ := geoServer(t, http.StatusServiceUnavailable, ``)

	_, err := client.Fetch(context.Background(), "Berlin", "DE")

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.ErrorContains(t, err, "Geo service responded with HTTP error code 503")
}

func TestGeoClient_Fetch_ApplicationError(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK,
		`{"status":{"message":"user account not enabled to use the free webservice","value":10}}`)

	_, err := client.Fetch(context.Background(), "Berlin", "DE")

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.ErrorContains(t, err, "Geo service responded with message: user account not enabled")
}

func TestGeoClient_Fetch_MalformedBody(t *testing.T) {
	client, _ := geoServer(t, http.StatusOK, `{"geonames": [`)

	_, err := client.Fetch(context.Background(), "Berlin", "DE")

	require.Error(t, err)
	// A decode failure is neither a validation nor a remote-service error.
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrRemote)
}

func TestGeoClient_Fetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := provider.NewGeoClient(srv.URL, "testuser", nil)
	require.NoError(t, err)
	srv.Close() // connection refused from here on

	_, err = client.Fetch(context.Background(), "Berlin", "DE")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRemote)
	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
}
