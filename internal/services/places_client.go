package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

const maxAlternatives = 4

// VenueSearch is one place-search request: where to look and what to
// look for, plus optional result filters.
type VenueSearch struct {
	Location   string
	SearchTerm string
	VenueType  string
	Keywords   []string
	MinRating  float64
	OpenNow    bool
}

// VenueResolver finds concrete venues for a location/type query and
// canonicalizes free-form location names, best-effort.
type VenueResolver interface {
	Resolve(ctx context.Context, search VenueSearch) (*response_models.Place, error)
	CanonicalName(ctx context.Context, location string) (string, error)
}

type PlacesSearchClient struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	City    string
}

func NewPlacesSearchClient(city string) *PlacesSearchClient {
	key := os.Getenv("PLACES_API_KEY")
	if key == "" {
		panic("PLACES_API_KEY is empty")
	}
	base := os.Getenv("PLACES_API_BASE_URL")
	if base == "" {
		base = "https://maps.googleapis.com/maps/api/place"
	}
	return &PlacesSearchClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: strings.TrimRight(base, "/"),
		APIKey:  key,
		City:    city,
	}
}

type placeResult struct {
	PlaceID          string `json:"place_id"`
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Types  []string `json:"types"`
	Rating float64  `json:"rating"`
}

type placesSearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

// Resolve runs a text search and returns the best candidate with up to
// four alternatives attached. A rating filter prefers qualifying results
// but falls back to the unfiltered set rather than returning nothing.
func (c *PlacesSearchClient) Resolve(ctx context.Context, search VenueSearch) (*response_models.Place, error) {
	results, err := c.textSearch(ctx, c.buildQuery(search), search.VenueType, search.OpenNow)
	if err != nil {
		return nil, err
	}

	candidates := results
	if search.MinRating > 0 {
		var rated []placeResult
		for _, r := range results {
			if r.Rating >= search.MinRating {
				rated = append(rated, r)
			}
		}
		if len(rated) > 0 {
			candidates = rated
		}
	}

	primary := toPlace(candidates[0])
	for _, r := range candidates[1:] {
		primary.Alternatives = append(primary.Alternatives, toPlace(r))
		if len(primary.Alternatives) == maxAlternatives {
			break
		}
	}
	return &primary, nil
}

// CanonicalName geocodes a location name via the same text search and
// returns the provider's name for it.
func (c *PlacesSearchClient) CanonicalName(ctx context.Context, location string) (string, error) {
	query := location
	if c.City != "" {
		query = fmt.Sprintf("%s, %s", location, c.City)
	}
	results, err := c.textSearch(ctx, query, "", false)
	if err != nil {
		return "", err
	}
	return results[0].Name, nil
}

func (c *PlacesSearchClient) buildQuery(search VenueSearch) string {
	what := search.SearchTerm
	if what == "" {
		what = strings.ReplaceAll(search.VenueType, "_", " ")
	}
	if len(search.Keywords) > 0 {
		what = strings.TrimSpace(what + " " + strings.Join(search.Keywords, " "))
	}

	parts := []string{what, "in", search.Location}
	if c.City != "" {
		parts = append(parts, c.City)
	}
	return strings.Join(parts, " ")
}

func (c *PlacesSearchClient) textSearch(ctx context.Context, query, venueType string, openNow bool) ([]placeResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.APIKey)
	if venueType != "" {
		q.Set("type", venueType)
	}
	if openNow {
		q.Set("opennow", "true")
	}

	reqURL := fmt.Sprintf("%s/textsearch/json?%s", c.BaseURL, q.Encode())
	req, _ := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: place search: %v", utils.ErrExternalServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: place search status %s", utils.ErrExternalServiceUnavailable, resp.Status)
	}

	var payload placesSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: place search decode: %v", utils.ErrExternalServiceUnavailable, err)
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, fmt.Errorf("%w: %q", utils.ErrPlaceNotFound, query)
	default:
		return nil, fmt.Errorf("%w: place search status %s: %s", utils.ErrExternalServiceUnavailable, payload.Status, payload.ErrorMessage)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", utils.ErrPlaceNotFound, query)
	}
	return payload.Results, nil
}

func toPlace(r placeResult) response_models.Place {
	return response_models.Place{
		ID:      r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Coordinates: &response_models.Coordinates{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		},
		CategoryTags: r.Types,
		Rating:       r.Rating,
	}
}
