package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/request_models"
	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

const defaultStartClock = "10:00"

type ItineraryServiceInterface interface {
	Build(ctx context.Context, req request_models.BuildItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	parser    ParserServiceInterface
	location  LocationServiceInterface
	resolver  VenueResolver
	scheduler SchedulerServiceInterface
	weather   WeatherServiceInterface
	travel    TravelServiceInterface
	cfg       *gazetteer.CityConfig
}

func NewItineraryService(
	parser ParserServiceInterface,
	location LocationServiceInterface,
	resolver VenueResolver,
	scheduler SchedulerServiceInterface,
	weather WeatherServiceInterface,
	travel TravelServiceInterface,
	cfg *gazetteer.CityConfig,
) ItineraryServiceInterface {
	return &ItineraryService{
		parser:    parser,
		location:  location,
		resolver:  resolver,
		scheduler: scheduler,
		weather:   weather,
		travel:    travel,
		cfg:       cfg,
	}
}

// Build runs the whole pipeline for one request. It either returns a
// complete itinerary or a single terminal error; degraded steps (weather,
// flexible stops that found nothing) downgrade to warnings instead.
func (s *ItineraryService) Build(ctx context.Context, req request_models.BuildItineraryRequest) (*response_models.Itinerary, error) {
	structured, err := s.parser.Parse(ctx, req)
	if err != nil {
		return nil, err
	}

	warnings := append([]string(nil), structured.Warnings...)
	date, dateWarning := resolveDate(structured.Date)
	if dateWarning != "" {
		warnings = append(warnings, dateWarning)
	}

	stops, scheduled, err := s.resolveFixedStops(ctx, structured, &warnings)
	if err != nil {
		return nil, err
	}

	flexible, flexWarnings := s.resolveDestinations(ctx, structured, stops, scheduled, date)
	stops = append(stops, flexible...)
	warnings = append(warnings, flexWarnings...)

	sortStops(stops)
	stops = s.scheduler.FillGaps(ctx, date, stops, structured.Preferences)

	stops, weatherWarnings := s.weather.ApplySubstitutions(ctx, date, stops)
	warnings = append(warnings, weatherWarnings...)

	if n := resolvedVenueCount(stops); n < 2 {
		return nil, fmt.Errorf("%w: only %d venue(s) found for %q", utils.ErrInsufficientStops, n, req.Query)
	}

	return &response_models.Itinerary{
		Query:       req.Query,
		Date:        date.Format("2006-01-02"),
		Places:      stops,
		TravelTimes: s.travel.BuildSegments(date, stops),
		Created:     time.Now().Format(time.RFC3339),
		Warnings:    warnings,
	}, nil
}

// resolveFixedStops turns each fixed-time entry into a scheduled stop.
// Non-venue categories become synthetic stops without a search; a venue
// lookup miss is terminal and carries ranked location suggestions.
func (s *ItineraryService) resolveFixedStops(ctx context.Context, structured *request_models.StructuredRequest, warnings *[]string) ([]response_models.ScheduledStop, map[string]bool, error) {
	scheduled := make(map[string]bool)
	stops := make([]response_models.ScheduledStop, 0, len(structured.FixedTimes))

	for _, entry := range structured.FixedTimes {
		if !entry.Category.IsVenue() {
			stops = append(stops, syntheticStop(entry))
			continue
		}

		place, err := s.resolver.Resolve(ctx, VenueSearch{
			Location:   s.canonicalLocation(ctx, entry.Location),
			SearchTerm: entry.SearchTerm,
			VenueType:  entry.Category.VenueType(),
			Keywords:   entry.Keywords,
			MinRating:  entry.MinRating,
		})
		if err != nil {
			if errors.Is(err, utils.ErrPlaceNotFound) {
				suggestions := s.location.SuggestAlternatives(entry.Location)
				return nil, nil, fmt.Errorf("%w: %q (try: %s)", utils.ErrUnresolvedLocation, entry.Location, strings.Join(suggestions, ", "))
			}
			return nil, nil, err
		}

		if place.ID != "" && scheduled[place.ID] {
			alt := firstUnscheduledAlternative(place.Alternatives, scheduled)
			if alt == nil {
				log.Printf("dropping duplicate venue %q at %s", place.Name, entry.Time)
				*warnings = append(*warnings, fmt.Sprintf("skipped %s at %s, venue already scheduled", entry.Location, entry.Time))
				continue
			}
			place = alt
		}

		stops = append(stops, response_models.ScheduledStop{
			Venue:           *place,
			Time:            entry.Time,
			IsFixed:         true,
			Area:            entry.Location,
			WeatherSuitable: true,
		})
		if place.ID != "" {
			scheduled[place.ID] = true
		}
	}
	return stops, scheduled, nil
}

// resolveDestinations schedules the flexible destinations into free slots
// starting from the requested start time. Misses are skipped with a
// warning rather than failing the build.
func (s *ItineraryService) resolveDestinations(ctx context.Context, structured *request_models.StructuredRequest, existing []response_models.ScheduledStop, scheduled map[string]bool, date time.Time) ([]response_models.ScheduledStop, []string) {
	if len(structured.Destinations) == 0 {
		return nil, nil
	}

	start := structured.StartTime
	if start == "" {
		start = defaultStartClock
	}
	pointer, err := utils.CombineDateTime(date, start)
	if err != nil {
		pointer, _ = utils.CombineDateTime(date, defaultStartClock)
	}

	taken := make([]time.Time, 0, len(existing))
	for _, stop := range existing {
		if at, err := utils.CombineDateTime(date, stop.Time); err == nil {
			taken = append(taken, at)
		}
	}

	var out []response_models.ScheduledStop
	var warnings []string
	for _, dest := range structured.Destinations {
		place, err := s.resolver.Resolve(ctx, VenueSearch{
			Location:   s.canonicalLocation(ctx, dest),
			SearchTerm: "things to do",
			VenueType:  "tourist_attraction",
		})
		if err != nil {
			log.Printf("flexible destination %q skipped: %v", dest, err)
			warnings = append(warnings, fmt.Sprintf("could not find anything in %s, skipped", dest))
			continue
		}
		if place.ID != "" && scheduled[place.ID] {
			continue
		}

		slot := nextFreeSlot(pointer, taken)
		out = append(out, response_models.ScheduledStop{
			Venue:           *place,
			Time:            slot.Format("15:04"),
			IsFixed:         false,
			Area:            dest,
			WeatherSuitable: true,
		})
		if place.ID != "" {
			scheduled[place.ID] = true
		}
		taken = append(taken, slot)
		pointer = slot.Add(DefaultStopDuration + 30*time.Minute)
	}
	return out, warnings
}

// canonicalLocation leaves gazetteer-known names alone and asks the
// geocoder about the rest, keeping the user's wording when the geocoder's
// answer does not plausibly match.
func (s *ItineraryService) canonicalLocation(ctx context.Context, name string) string {
	if s.knownLocation(name) {
		return name
	}
	canonical := s.location.NormalizeViaGeocoder(ctx, name)
	if canonical != name && !s.location.VerifyMatch(name, canonical, nil) {
		return name
	}
	return canonical
}

func (s *ItineraryService) knownLocation(name string) bool {
	if _, ok := s.cfg.FindArea(name); ok {
		return true
	}
	if _, ok := s.cfg.IsTransitHub(name); ok {
		return true
	}
	for _, l := range s.cfg.Landmarks {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

var nonVenueLabels = map[request_models.ActivityCategory]string{
	request_models.CategoryMeeting: "Meeting in %s",
	request_models.CategoryWalk:    "Walk around %s",
	request_models.CategoryExplore: "Explore %s",
	request_models.CategoryTravel:  "Travel to %s",
	request_models.CategoryRest:    "Break in %s",
}

func syntheticStop(entry request_models.FixedTimeEntry) response_models.ScheduledStop {
	format, ok := nonVenueLabels[entry.Category]
	if !ok {
		format = "Time in %s"
	}
	return response_models.ScheduledStop{
		Venue:           response_models.Place{Name: fmt.Sprintf(format, entry.Location)},
		Time:            entry.Time,
		IsFixed:         true,
		Area:            entry.Location,
		WeatherSuitable: true,
	}
}

func firstUnscheduledAlternative(alternatives []response_models.Place, scheduled map[string]bool) *response_models.Place {
	for i := range alternatives {
		if alternatives[i].ID == "" || !scheduled[alternatives[i].ID] {
			alt := alternatives[i]
			return &alt
		}
	}
	return nil
}

func nextFreeSlot(from time.Time, taken []time.Time) time.Time {
	slot := from
	for {
		moved := false
		for _, t := range taken {
			if slot.Before(t.Add(DefaultStopDuration)) && t.Before(slot.Add(DefaultStopDuration)) {
				slot = t.Add(DefaultStopDuration)
				moved = true
			}
		}
		if !moved {
			return slot
		}
	}
}

func sortStops(stops []response_models.ScheduledStop) {
	sort.SliceStable(stops, func(i, j int) bool {
		if stops[i].Time != stops[j].Time {
			return stops[i].Time < stops[j].Time
		}
		return stops[i].IsFixed && !stops[j].IsFixed
	})
}

func resolvedVenueCount(stops []response_models.ScheduledStop) int {
	n := 0
	for _, stop := range stops {
		if stop.Venue.ID != "" {
			n++
		}
	}
	return n
}

func resolveDate(raw string) (time.Time, string) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if raw == "" {
		return today, ""
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return today, fmt.Sprintf("could not read date %q, planning for today", raw)
	}
	return parsed, ""
}
