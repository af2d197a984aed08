package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

type ForecastSample struct {
	Timestamp    time.Time
	TemperatureC float64
	Condition    string
}

type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lng float64) ([]ForecastSample, error)
}

// OpenWeatherClient fetches 3-hourly forecasts. Results are cached per
// 2-decimal-rounded coordinate pair so nearby stops share one fetch.
type OpenWeatherClient struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	Cache   *cache.Cache
}

// NewOpenWeatherClient returns nil when no API key is configured; the
// substitution pass simply stays disabled in that case.
func NewOpenWeatherClient(forecastCache *cache.Cache) *OpenWeatherClient {
	key := os.Getenv("WEATHER_API_KEY")
	if key == "" {
		log.Println("WEATHER_API_KEY is empty, weather substitution disabled")
		return nil
	}
	base := os.Getenv("WEATHER_API_BASE_URL")
	if base == "" {
		base = "https://api.openweathermap.org/data/2.5"
	}
	return &OpenWeatherClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: strings.TrimRight(base, "/"),
		APIKey:  key,
		Cache:   forecastCache,
	}
}

func (c *OpenWeatherClient) Forecast(ctx context.Context, lat, lng float64) ([]ForecastSample, error) {
	key := fmt.Sprintf("%.2f,%.2f", lat, lng)
	if cached, ok := c.Cache.Get(key); ok {
		return cached.([]ForecastSample), nil
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 4, 64))
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")

	reqURL := fmt.Sprintf("%s/forecast?%s", c.BaseURL, q.Encode())
	req, _ := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: forecast: %v", utils.ErrExternalServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: forecast status %s", utils.ErrExternalServiceUnavailable, resp.Status)
	}

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Main string `json:"main"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: forecast decode: %v", utils.ErrExternalServiceUnavailable, err)
	}

	samples := make([]ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		sample := ForecastSample{
			Timestamp:    time.Unix(item.Dt, 0),
			TemperatureC: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Condition = item.Weather[0].Main
		}
		samples = append(samples, sample)
	}
	c.Cache.Set(key, samples, cache.DefaultExpiration)
	return samples, nil
}

const (
	minComfortTempC = 5.0
	maxComfortTempC = 30.0
)

type WeatherServiceInterface interface {
	ApplySubstitutions(ctx context.Context, date time.Time, stops []response_models.ScheduledStop) ([]response_models.ScheduledStop, []string)
}

type WeatherService struct {
	provider ForecastProvider
	enabled  bool
}

func NewWeatherService(provider ForecastProvider, enabled bool) WeatherServiceInterface {
	return &WeatherService{provider: provider, enabled: enabled && provider != nil}
}

// ApplySubstitutions checks each outdoor stop that has alternatives
// against the forecast. Unsuitable weather swaps in an indoor alternative
// when one exists, otherwise the stop is only flagged. Forecast failures
// leave the venue alone but surface the indoor options.
func (s *WeatherService) ApplySubstitutions(ctx context.Context, date time.Time, stops []response_models.ScheduledStop) ([]response_models.ScheduledStop, []string) {
	if !s.enabled {
		return stops, nil
	}

	var warnings []string
	forecastFailed := false
	for i := range stops {
		stop := &stops[i]
		if !isOutdoorVenue(stop.Venue) || len(stop.Venue.Alternatives) == 0 {
			continue
		}
		if stop.Venue.Coordinates == nil {
			continue
		}

		at, err := utils.CombineDateTime(date, stop.Time)
		if err != nil {
			continue
		}

		samples, err := s.provider.Forecast(ctx, stop.Venue.Coordinates.Latitude, stop.Venue.Coordinates.Longitude)
		if err != nil || len(samples) == 0 {
			log.Printf("forecast unavailable for %s: %v", stop.Venue.Name, err)
			stop.IndoorAlternatives = indoorAlternatives(stop.Venue)
			forecastFailed = true
			continue
		}

		sample := closestSample(samples, at)
		reason, unsuitable := unsuitableReason(sample)
		if !unsuitable {
			continue
		}

		if indoor := firstIndoorAlternative(stop.Venue); indoor != nil {
			displaced := stop.Venue
			displaced.Alternatives = nil
			replacement := *indoor
			replacement.Alternatives = append([]response_models.Place{displaced}, remainingAlternatives(stop.Venue, indoor.ID)...)

			stop.Venue = replacement
			stop.WeatherSuitable = false
			stop.WeatherNote = fmt.Sprintf("%s, moved indoors to %s", reason, replacement.Name)
		} else {
			stop.WeatherSuitable = false
			stop.WeatherNote = reason
		}
	}

	if forecastFailed {
		warnings = append(warnings, "weather forecast unavailable, outdoor stops were not checked")
	}
	return stops, warnings
}

var strongIndoorTags = map[string]bool{
	"museum": true, "restaurant": true, "cafe": true, "bar": true,
	"theater": true, "theatre": true, "movie_theater": true,
	"mall": true, "shopping_mall": true, "library": true,
	"art_gallery": true, "book_store": true,
}

var outdoorTags = map[string]bool{
	"park": true, "garden": true, "zoo": true, "amusement_park": true,
	"campground": true, "natural_feature": true, "beach": true,
	"cemetery": true, "marina": true, "stadium": true, "hiking_area": true,
}

// isOutdoorVenue classifies by tags; any strong indoor tag wins outright.
func isOutdoorVenue(p response_models.Place) bool {
	outdoor := false
	for _, tag := range p.CategoryTags {
		t := strings.ToLower(tag)
		if strongIndoorTags[t] {
			return false
		}
		if outdoorTags[t] {
			outdoor = true
		}
	}
	return outdoor
}

func isIndoorVenue(p response_models.Place) bool {
	for _, tag := range p.CategoryTags {
		if strongIndoorTags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

func firstIndoorAlternative(p response_models.Place) *response_models.Place {
	for i := range p.Alternatives {
		if isIndoorVenue(p.Alternatives[i]) {
			return &p.Alternatives[i]
		}
	}
	return nil
}

func indoorAlternatives(p response_models.Place) []response_models.Place {
	var out []response_models.Place
	for _, alt := range p.Alternatives {
		if isIndoorVenue(alt) {
			out = append(out, alt)
		}
	}
	return out
}

func remainingAlternatives(p response_models.Place, skipID string) []response_models.Place {
	var out []response_models.Place
	for _, alt := range p.Alternatives {
		if alt.ID != skipID {
			out = append(out, alt)
		}
	}
	return out
}

func closestSample(samples []ForecastSample, at time.Time) ForecastSample {
	best := samples[0]
	bestDelta := math.Abs(samples[0].Timestamp.Sub(at).Minutes())
	for _, sample := range samples[1:] {
		delta := math.Abs(sample.Timestamp.Sub(at).Minutes())
		if delta < bestDelta {
			best = sample
			bestDelta = delta
		}
	}
	return best
}

var wetConditions = map[string]bool{
	"rain": true, "drizzle": true, "thunderstorm": true, "snow": true,
}

func unsuitableReason(sample ForecastSample) (string, bool) {
	cond := strings.ToLower(sample.Condition)
	if wetConditions[cond] {
		return fmt.Sprintf("%s expected around %s", cond, sample.Timestamp.Format("15:04")), true
	}
	if sample.TemperatureC < minComfortTempC {
		return fmt.Sprintf("too cold outdoors (%.0f°C)", sample.TemperatureC), true
	}
	if sample.TemperatureC > maxComfortTempC {
		return fmt.Sprintf("too hot outdoors (%.0f°C)", sample.TemperatureC), true
	}
	return "", false
}
