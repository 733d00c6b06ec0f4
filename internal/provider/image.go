package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/akarrer/travel-planner/internal/domain"
)

const (
	// searchSuffix is appended to every location query to bias results
	// towards landmark photography.
	searchSuffix = "+landmark"

	// queryMaxChars is the maximum query length the image service imposes on the
	// q parameter. The location must leave room for searchSuffix.
	queryMaxChars = 100
)

// ImagePayload is the raw image search response.
type ImagePayload struct {
	Total     int        `json:"total"`
	TotalHits int        `json:"totalHits"`
	Hits      []ImageHit `json:"hits,omitempty"`
}

// ImageHit is a single image search result. Only the webformat rendition and
// the uploading user are consumed downstream; the rest of the hit is dropped
// during decoding.
type ImageHit struct {
	WebformatURL    string `json:"webformatURL"`
	WebformatWidth  int    `json:"webformatWidth"`
	WebformatHeight int    `json:"webformatHeight"`
	User            string `json:"user"`
}

// ImageClient queries the landmark image search service.
type ImageClient struct {
	client
	apiKey string
}

// NewImageClient constructs an ImageClient against baseURL.
// limiter may be nil to disable rate limiting.
func NewImageClient(baseURL, apiKey string, limiter *rate.Limiter) (*ImageClient, error) {
	c, err := newClient(baseURL, limiter)
	if err != nil {
		return nil, err
	}
	return &ImageClient{client: c, apiKey: apiKey}, nil
}

// Fetch searches for landmark photos of location and returns the raw result
// set. The location must be non-empty and short enough that the combined
// search term stays inside the service's query length limit; violations are
// reported as domain.ErrValidation before any network traffic.
func (i *ImageClient) Fetch(ctx context.Context, location string) (*ImagePayload, error) {
	if err := checkLocation(location); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("key", i.apiKey)
	query.Set("q", location+searchSuffix)
	query.Set("image_type", "photo")
	query.Set("lang", "EN")
	query.Set("page", "1")
	query.Set("per_page", "3")

	var payload ImagePayload
	err := i.get(ctx, query, &payload, func(status int, body []byte) error {
		// This service reports errors as plain text in the response body.
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = "no particular error message"
		}
		return fmt.Errorf("%w: Image service responded with %s", domain.ErrRemote, message)
	})
	if err != nil {
		return nil, err
	}
	return &payload, nil
}

func checkLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: Param 'location' must not be empty", domain.ErrValidation)
	}
	if utf8.RuneCountInString(location)+len(searchSuffix) > queryMaxChars {
		return fmt.Errorf("%w: Param 'location' must not exceed %d characters",
			domain.ErrValidation, queryMaxChars-len(searchSuffix))
	}
	return nil
}
