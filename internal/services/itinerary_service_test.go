package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/request_models"
	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

func placed(id, name string, tags ...string) *response_models.Place {
	return &response_models.Place{
		ID:           id,
		Name:         name,
		Coordinates:  &response_models.Coordinates{Latitude: 51.51, Longitude: -0.13},
		CategoryTags: tags,
	}
}

// newItineraryTestService wires the real pipeline around a scripted venue
// resolver: deterministic parser, gazetteer-backed location service, real
// scheduler and travel estimates. Weather stays off unless a provider is
// given.
func newItineraryTestService(resolver VenueResolver, provider ForecastProvider) ItineraryServiceInterface {
	cfg := gazetteer.LondonConfig()
	location := NewLocationService(cfg, resolver)
	parser := NewParserService(nil, utils.DefaultAttemptConfigs(), location, cfg)
	scheduler := NewSchedulerService(cfg, resolver)
	weather := NewWeatherService(provider, provider != nil)
	return NewItineraryService(parser, location, resolver, scheduler, weather, NewTravelService(), cfg)
}

func TestBuildFullDayItinerary(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Soho":             placed("s1", "Dean Street Townhouse", "restaurant"),
			"Mayfair":          placed("m1", "The Araki", "restaurant"),
			"Soho|art gallery": placed("g1", "Soho Photography Gallery", "art_gallery"),
			"Soho|tea room":    placed("t1", "Maison Bertaux", "cafe"),
			"Soho|bookshop":    placed("b1", "Foyles", "book_store"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "lunch at 1pm in Soho, then dinner at 8pm in Mayfair",
		Date:  "2025-06-04",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2025-06-04", got.Date)
	assert.Empty(t, got.Warnings)

	assert.Len(t, got.Places, 5)
	times := make([]string, 0, len(got.Places))
	for _, stop := range got.Places {
		times = append(times, stop.Time)
	}
	assert.Equal(t, []string{"13:00", "14:00", "16:00", "18:00", "20:00"}, times)

	assert.True(t, got.Places[0].IsFixed)
	assert.Equal(t, "s1", got.Places[0].Venue.ID)
	assert.True(t, got.Places[4].IsFixed)
	assert.Equal(t, "m1", got.Places[4].Venue.ID)
	for _, stop := range got.Places[1:4] {
		assert.False(t, stop.IsFixed)
		assert.Equal(t, "Soho", stop.Area)
	}

	assert.Len(t, got.TravelTimes, 4)
	for _, seg := range got.TravelTimes {
		assert.Equal(t, 5, seg.DurationMinutes)
	}
	assert.Equal(t, "14:05", got.TravelTimes[0].ArrivalTime)

	_, err = time.Parse(time.RFC3339, got.Created)
	assert.NoError(t, err)
}

func TestBuildRejectsEmptyQuery(t *testing.T) {
	svc := newItineraryTestService(&mapResolver{}, nil)

	_, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{Query: " "})

	assert.True(t, errors.Is(err, utils.ErrEmptyQuery), "got %v", err)
}

func TestBuildUnresolvedFixedLocationIsTerminal(t *testing.T) {
	svc := newItineraryTestService(&mapResolver{}, nil)

	_, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "dinner at 8pm in Narnia Quarter",
	})

	assert.True(t, errors.Is(err, utils.ErrUnresolvedLocation), "got %v", err)
	assert.Contains(t, err.Error(), `"Narnia Quarter"`)
	assert.Contains(t, err.Error(), "try: Soho, Covent Garden, South Bank")
}

func TestBuildInsufficientStops(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Soho": placed("s1", "Dean Street Townhouse", "restaurant"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	_, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "lunch at 1pm in Soho",
	})

	assert.True(t, errors.Is(err, utils.ErrInsufficientStops), "got %v", err)
	assert.Contains(t, err.Error(), "only 1 venue(s)")
}

func TestBuildSlotsFlexibleDestinations(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Shoreditch": placed("sh1", "Boxpark Shoreditch", "tourist_attraction"),
			"Camden":     placed("c1", "Camden Market", "tourist_attraction"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query:     "explore Shoreditch and wander around Camden",
		Date:      "2025-06-04",
		StartTime: "11am",
	})

	assert.NoError(t, err)
	assert.Len(t, got.Places, 2)

	assert.Equal(t, "sh1", got.Places[0].Venue.ID)
	assert.Equal(t, "11:00", got.Places[0].Time)
	assert.False(t, got.Places[0].IsFixed)

	assert.Equal(t, "c1", got.Places[1].Venue.ID)
	assert.Equal(t, "12:30", got.Places[1].Time)
}

func TestBuildSkipsFlexibleMissWithWarning(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Shoreditch": placed("sh1", "Boxpark Shoreditch", "tourist_attraction"),
			"Camden":     placed("c1", "Camden Market", "tourist_attraction"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "explore Shoreditch, museum near Hackney Wick, then wander around Camden",
		Date:  "2025-06-04",
	})

	assert.NoError(t, err)
	assert.Len(t, got.Places, 2)
	assert.Equal(t, "10:00", got.Places[0].Time)
	assert.Equal(t, "11:30", got.Places[1].Time)
	assert.Contains(t, got.Warnings, "could not find anything in Hackney Wick, skipped")
}

func TestBuildSyntheticStopForNonVenueCategory(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Soho":    placed("s1", "Dean Street Townhouse", "restaurant"),
			"Mayfair": placed("m1", "The Araki", "restaurant"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "meeting at 10am at King's Cross, lunch at 1pm in Soho, dinner at 8pm in Mayfair",
		Date:  "2025-06-04",
	})

	assert.NoError(t, err)
	assert.Len(t, got.Places, 3)

	meeting := got.Places[0]
	assert.Equal(t, "Meeting in King's Cross Station", meeting.Venue.Name)
	assert.Empty(t, meeting.Venue.ID)
	assert.True(t, meeting.IsFixed)
	assert.Equal(t, "10:00", meeting.Time)

	// No coordinates on the synthetic stop, so travel uses the default.
	assert.Equal(t, 30, got.TravelTimes[0].DurationMinutes)
}

func TestBuildDuplicateVenueFallsToAlternative(t *testing.T) {
	primary := placed("s1", "Dean Street Townhouse", "restaurant")
	primary.Alternatives = []response_models.Place{*placed("s2", "Quo Vadis", "restaurant")}
	resolver := &mapResolver{
		byKey:     map[string]*response_models.Place{"Soho": primary},
		canonical: map[string]string{"Sohoo": "Soho"},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "lunch at 1pm in Soho, dinner at 8pm in Sohoo",
		Date:  "2025-06-04",
	})

	assert.NoError(t, err)
	assert.Len(t, got.Places, 2)
	assert.Equal(t, "s1", got.Places[0].Venue.ID)
	assert.Equal(t, "s2", got.Places[1].Venue.ID)

	// The misspelt location was geocoded back to the canonical area.
	var locations []string
	for _, call := range resolver.calls {
		locations = append(locations, call.Location)
	}
	assert.Contains(t, locations, "Soho")
	assert.NotContains(t, locations, "Sohoo")
}

func TestBuildMovesRainedOutStopIndoors(t *testing.T) {
	park := placed("p1", "Hyde Park Picnic Lawn", "park")
	park.Alternatives = []response_models.Place{
		*placed("a1", "Kensington Gardens", "park"),
		*placed("a2", "The Wallace Collection", "museum"),
	}
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Hyde Park": park,
			"Mayfair":   placed("m1", "The Araki", "restaurant"),
		},
	}
	provider := &fakeForecastProvider{
		samples: []ForecastSample{sampleAt(15, "Rain", 13)},
	}
	svc := newItineraryTestService(resolver, provider)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "picnic at 3pm in Hyde Park, dinner at 8pm in Mayfair",
		Date:  "2025-06-04",
	})

	assert.NoError(t, err)

	swapped := got.Places[0]
	assert.Equal(t, "a2", swapped.Venue.ID)
	assert.False(t, swapped.WeatherSuitable)
	assert.Contains(t, swapped.WeatherNote, "moved indoors to The Wallace Collection")

	dinner := got.Places[len(got.Places)-1]
	assert.Equal(t, "m1", dinner.Venue.ID)
	assert.True(t, dinner.WeatherSuitable)
}

func TestBuildBadDateFallsBackToToday(t *testing.T) {
	resolver := &mapResolver{
		byKey: map[string]*response_models.Place{
			"Soho":    placed("s1", "Dean Street Townhouse", "restaurant"),
			"Mayfair": placed("m1", "The Araki", "restaurant"),
		},
	}
	svc := newItineraryTestService(resolver, nil)

	got, err := svc.Build(context.Background(), request_models.BuildItineraryRequest{
		Query: "lunch at 1pm in Soho, dinner at 8pm in Mayfair",
		Date:  "junk",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), got.Date)
	assert.Contains(t, got.Warnings, `could not read date "junk", planning for today`)
}
