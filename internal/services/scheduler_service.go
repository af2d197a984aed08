package services

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/request_models"
	"dayplanner/internal/models/response_models"
	"dayplanner/pkg/utils"
)

const (
	// DefaultStopDuration is how long one activity is assumed to occupy.
	DefaultStopDuration = 60 * time.Minute

	// gapFillThreshold is the idle time between stops that triggers fillers.
	gapFillThreshold = 90 * time.Minute

	maxFillersPerGap = 3
	quietCrowdCeil   = 2
)

type SchedulerServiceInterface interface {
	FillGaps(ctx context.Context, date time.Time, stops []response_models.ScheduledStop, prefs request_models.Preferences) []response_models.ScheduledStop
}

type SchedulerService struct {
	cfg      *gazetteer.CityConfig
	resolver VenueResolver
}

func NewSchedulerService(cfg *gazetteer.CityConfig, resolver VenueResolver) SchedulerServiceInterface {
	return &SchedulerService{cfg: cfg, resolver: resolver}
}

type fillerCandidate struct {
	area        string
	description string
	search      VenueSearch
}

// FillGaps walks consecutive fixed stops, synthesizes filler activities
// for idle intervals past the threshold, resolves each through the venue
// search, and returns the merged chronological stop list. Candidates that
// fail to resolve or repeat an already-scheduled venue are dropped.
func (s *SchedulerService) FillGaps(ctx context.Context, date time.Time, stops []response_models.ScheduledStop, prefs request_models.Preferences) []response_models.ScheduledStop {
	out := append([]response_models.ScheduledStop(nil), stops...)
	scheduled := make(map[string]bool, len(out))
	for _, stop := range out {
		if stop.Venue.ID != "" {
			scheduled[stop.Venue.ID] = true
		}
	}

	for i := 0; i < len(stops)-1; i++ {
		cur, next := stops[i], stops[i+1]
		curAt, err := utils.CombineDateTime(date, cur.Time)
		if err != nil {
			continue
		}
		nextAt, err := utils.CombineDateTime(date, next.Time)
		if err != nil {
			continue
		}
		nextAt = utils.AddDayIfBefore(curAt, nextAt)

		freeFrom := curAt.Add(DefaultStopDuration)
		gap := nextAt.Sub(freeFrom)
		if gap <= gapFillThreshold {
			continue
		}

		count := fillerCount(gap)
		slotWidth := gap / time.Duration(count)
		accepted := 0
		for _, candidate := range s.fillerCandidates(cur.Area, freeFrom, prefs) {
			if accepted == count {
				break
			}
			at := freeFrom.Add(slotWidth * time.Duration(accepted))
			if !sameDay(at, curAt) {
				// Fillers never spill past midnight; their clock strings
				// would sort to the front of the day.
				break
			}
			place, err := s.resolver.Resolve(ctx, candidate.search)
			if err != nil {
				log.Printf("filler %q in %s skipped: %v", candidate.description, candidate.area, err)
				continue
			}
			if place.ID != "" && scheduled[place.ID] {
				continue
			}

			out = append(out, response_models.ScheduledStop{
				Venue:           *place,
				Time:            at.Format("15:04"),
				IsFixed:         false,
				Area:            candidate.area,
				WeatherSuitable: true,
			})
			if place.ID != "" {
				scheduled[place.ID] = true
			}
			accepted++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].IsFixed && !out[j].IsFixed
	})
	return out
}

// fillerCandidates builds the ordered candidate list for one gap:
// quiet areas near the current stop when the user asked for non-crowded,
// then areas matching the stated requirements, then the generic
// time-of-day table anchored on the current location.
func (s *SchedulerService) fillerCandidates(currentArea string, at time.Time, prefs request_models.Preferences) []fillerCandidate {
	var out []fillerCandidate

	if hasRequirement(prefs, "non-crowded") {
		bucket := utils.CrowdBucket(at)
		for _, area := range s.cfg.QuietAreasNear(currentArea, bucket, quietCrowdCeil) {
			if strings.EqualFold(area.Name, currentArea) {
				continue
			}
			out = append(out, fillerCandidate{
				area:        area.Name,
				description: "quiet time in " + area.Name,
				search:      VenueSearch{Location: area.Name, SearchTerm: quietSearchTerm(area)},
			})
		}
		if len(out) > 0 {
			return out
		}
	}

	if len(prefs.Requirements) > 0 {
		term := strings.Join(prefs.Requirements, " ")
		for _, area := range s.cfg.AreasMatching(prefs.Requirements, currentArea) {
			out = append(out, fillerCandidate{
				area:        area.Name,
				description: term + " in " + area.Name,
				search:      VenueSearch{Location: area.Name, SearchTerm: term},
			})
		}
		if len(out) > 0 {
			return out
		}
	}

	for _, g := range genericFillers[utils.ActivityBucket(at)] {
		out = append(out, fillerCandidate{
			area:        currentArea,
			description: g.description,
			search: VenueSearch{
				Location:   currentArea,
				SearchTerm: g.searchTerm,
				VenueType:  g.venueType,
			},
		})
	}
	return out
}

type genericFiller struct {
	description string
	searchTerm  string
	venueType   string
}

var genericFillers = map[string][]genericFiller{
	"morning": {
		{"coffee and a pastry", "coffee shop", "cafe"},
		{"a morning stroll", "park", "park"},
		{"browse a local market", "market", ""},
	},
	"midday": {
		{"a light lunch", "lunch spot", "restaurant"},
		{"browse local shops", "independent shops", ""},
		{"a quick gallery visit", "art gallery", "art_gallery"},
	},
	"afternoon": {
		{"a gallery or museum visit", "art gallery", "art_gallery"},
		{"afternoon tea", "tea room", "cafe"},
		{"browse a bookshop", "bookshop", "book_store"},
	},
	"evening": {
		{"a pre-dinner drink", "cocktail bar", "bar"},
		{"an evening viewpoint", "viewpoint", "tourist_attraction"},
		{"live music nearby", "live music venue", "bar"},
	},
}

func quietSearchTerm(area gazetteer.Area) string {
	if len(area.PopularFor) > 0 {
		return area.PopularFor[0]
	}
	return "cafe"
}

func hasRequirement(prefs request_models.Preferences, want string) bool {
	if strings.EqualFold(prefs.Type, want) {
		return true
	}
	for _, r := range prefs.Requirements {
		if strings.EqualFold(r, want) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func fillerCount(gap time.Duration) int {
	n := int(math.Ceil(gap.Hours() / 2))
	if n < 1 {
		n = 1
	}
	if n > maxFillersPerGap {
		n = maxFillersPerGap
	}
	return n
}
