package services

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"dayplanner/internal/gazetteer"
)

const maxSuggestions = 3

type LocationServiceInterface interface {
	Normalize(name string) string
	VerifyMatch(requested, returned string, resultTags []string) bool
	SuggestAlternatives(name string) []string
	NormalizeViaGeocoder(ctx context.Context, name string) string
}

type LocationService struct {
	cfg      *gazetteer.CityConfig
	resolver VenueResolver
}

func NewLocationService(cfg *gazetteer.CityConfig, resolver VenueResolver) LocationServiceInterface {
	return &LocationService{cfg: cfg, resolver: resolver}
}

// Normalize canonicalizes a location name: lookup tables first, then the
// transit-hub suffix rule, then word capitalization. Table hits return the
// stored canonical form untouched so normalization stays idempotent.
func (s *LocationService) Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	candidate := trimmed
	tableHit := false
	if canonical, ok := s.cfg.ColloquialNames[lower]; ok {
		candidate = canonical
		tableHit = true
	} else if canonical, ok := s.cfg.Misspellings[lower]; ok {
		candidate = canonical
		tableHit = true
	}

	if hub, ok := s.cfg.IsTransitHub(candidate); ok {
		return hub + " Station"
	}
	if tableHit {
		return candidate
	}
	return capitalizeWords(candidate)
}

// VerifyMatch decides whether a returned venue plausibly answers the
// requested location. Tiers, cheapest first: exact, containment, word
// majority, then area-tagged single-word and gazetteer adjacency.
func (s *LocationService) VerifyMatch(requested, returned string, resultTags []string) bool {
	req := strings.ToLower(strings.TrimSpace(requested))
	ret := strings.ToLower(strings.TrimSpace(returned))
	if req == "" || ret == "" {
		return false
	}
	if req == ret {
		return true
	}
	if strings.Contains(req, ret) || strings.Contains(ret, req) {
		return true
	}

	reqWords := significantWords(req)
	retWords := significantWords(ret)
	if len(reqWords) >= 2 {
		matched := 0
		for _, w := range reqWords {
			if wordOverlaps(w, retWords) {
				matched++
			}
		}
		if matched >= (len(reqWords)+1)/2 {
			return true
		}
	}

	if areaTagged(resultTags) {
		for _, w := range reqWords {
			if len(w) > 3 && wordOverlaps(w, retWords) {
				return true
			}
		}
		if s.adjacentAreas(req, ret) {
			return true
		}
	}
	return false
}

// SuggestAlternatives ranks known names against a missed lookup. Tier
// order is exact, prefix, substring, then reverse containment; ties keep
// first-seen source order. Empty input gets the city's popular defaults.
func (s *LocationService) SuggestAlternatives(name string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return s.popularDefaults()
	}

	type candidate struct {
		display string
		tier    int
		order   int
	}
	byDisplay := make(map[string]*candidate)
	var all []*candidate
	add := func(display string, tier int) {
		if existing, ok := byDisplay[display]; ok {
			if tier < existing.tier {
				existing.tier = tier
			}
			return
		}
		c := &candidate{display: display, tier: tier, order: len(all)}
		byDisplay[display] = c
		all = append(all, c)
	}

	colloquials := make([]string, 0, len(s.cfg.ColloquialNames))
	for k := range s.cfg.ColloquialNames {
		colloquials = append(colloquials, k)
	}
	sort.Strings(colloquials)
	for _, k := range colloquials {
		if tier, ok := matchTier(needle, k); ok {
			add(s.cfg.ColloquialNames[k], tier)
		}
	}

	for _, a := range s.cfg.Areas {
		if tier, ok := matchTier(needle, strings.ToLower(a.Name)); ok {
			add(a.Name, tier)
		}
		for _, n := range a.Neighbors {
			if tier, ok := matchTier(needle, strings.ToLower(n)); ok {
				add(n, tier)
			}
		}
	}

	if len(all) == 0 {
		return s.popularDefaults()
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].tier != all[j].tier {
			return all[i].tier < all[j].tier
		}
		return all[i].order < all[j].order
	})

	out := make([]string, 0, maxSuggestions)
	for _, c := range all {
		out = append(out, c.display)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// NormalizeViaGeocoder asks the place search for its canonical spelling.
// Any failure returns the input unchanged.
func (s *LocationService) NormalizeViaGeocoder(ctx context.Context, name string) string {
	if s.resolver == nil || strings.TrimSpace(name) == "" {
		return name
	}
	canonical, err := s.resolver.CanonicalName(ctx, name)
	if err != nil || canonical == "" {
		return name
	}
	return canonical
}

func (s *LocationService) popularDefaults() []string {
	defaults := s.cfg.PopularDefaults
	if len(defaults) > maxSuggestions {
		defaults = defaults[:maxSuggestions]
	}
	return append([]string(nil), defaults...)
}

func (s *LocationService) adjacentAreas(a, b string) bool {
	if area, ok := s.cfg.FindArea(a); ok {
		for _, n := range area.Neighbors {
			if strings.EqualFold(n, b) {
				return true
			}
		}
	}
	if area, ok := s.cfg.FindArea(b); ok {
		for _, n := range area.Neighbors {
			if strings.EqualFold(n, a) {
				return true
			}
		}
	}
	return false
}

func matchTier(needle, known string) (int, bool) {
	switch {
	case known == needle:
		return 0, true
	case strings.HasPrefix(known, needle):
		return 1, true
	case strings.Contains(known, needle):
		return 2, true
	case strings.Contains(needle, known):
		return 3, true
	}
	return 0, false
}

var locationStopwords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "at": true, "on": true,
}

func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ",.")
		if len(w) >= 3 && !locationStopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

func wordOverlaps(w string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(c, w) || strings.Contains(w, c) {
			return true
		}
	}
	return false
}

func areaTagged(tags []string) bool {
	for _, t := range tags {
		switch strings.ToLower(t) {
		case "neighborhood", "sublocality", "locality", "political", "borough":
			return true
		}
	}
	return false
}

var lowercaseConnectors = map[string]bool{
	"of": true, "the": true, "and": true, "on": true, "at": true, "in": true,
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if i > 0 && lowercaseConnectors[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}

// capitalizeWord title-cases one token, handling hyphenated compounds and
// leaving possessives alone ("king's" becomes "King's", not "King'S").
func capitalizeWord(w string) string {
	parts := strings.Split(w, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		runes := []rune(strings.ToLower(p))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, "-")
}
