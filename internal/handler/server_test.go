package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akarrer/travel-planner/internal/handler"
	"github.com/akarrer/travel-planner/internal/provider"
	"github.com/akarrer/travel-planner/internal/repo"
	"github.com/akarrer/travel-planner/internal/service"
)

// stubUpstream is a canned response for one of the three provider services.
type stubUpstream struct {
	status int
	body   string
}

func (s stubUpstream) start(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

// testHarness wires a full Server — real provider clients against stub
// upstream servers, a real in-memory store, and a planner with a fixed
// clock — exactly as main.go wires it in production.
type testHarness struct {
	http  http.Handler
	store *repo.MemoryTripStore
}

func newHarness(t *testing.T, geoUp, weatherUp, imageUp stubUpstream) *testHarness {
	t.Helper()

	geo, err := provider.NewGeoClient(geoUp.start(t), "testuser", nil)
	require.NoError(t, err)
	weather, err := provider.NewWeatherClient(weatherUp.start(t), "test-key", nil)
	require.NoError(t, err)
	image, err := provider.NewImageClient(imageUp.start(t), "test-key", nil)
	require.NoError(t, err)

	clock := func() time.Time {
		return time.Date(2020, 12, 28, 9, 30, 0, 0, time.UTC)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := repo.NewMemoryTripStore()
	planner := service.NewPlanner(geo, weather, image, clock, log)
	srv := handler.NewServer(planner, store, geo, weather, image)

	return &testHarness{http: srv.Routes(), store: store}
}

// okUpstreams returns stubs answering each provider with a small success
// payload: one geocoding hit for Berlin, a forecast on 2020-12-30, one photo.
func okUpstreams() (geo, weather, image stubUpstream) {
	geo = stubUpstream{http.StatusOK,
		`{"totalResultsCount":1,"geonames":[{"name":"Berlin","countryCode":"DE","lat":"52.52","lng":"13.41"}]}`}
	weather = stubUpstream{http.StatusOK,
		`{"data":[{"datetime":"2020-12-30","max_temp":5.8,"min_temp":1.2,"weather":{"icon":"c02d","code":802,"description":"Scattered clouds"}}]}`}
	image = stubUpstream{http.StatusOK,
		`{"total":1,"totalHits":1,"hits":[{"webformatURL":"https://img.example/one_640.jpg","webformatWidth":640,"webformatHeight":480,"user":"ArtTower"}]}`}
	return geo, weather, image
}

func (h *testHarness) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.http.ServeHTTP(rec, req)
	return rec
}
