package gazetteer

import "strings"

// CityConfig parameterizes the location-matching and gap-filling engine for
// one city: the gazetteer table plus the lookup tables the normalizer needs.
// One engine, one config per city, selected at startup.
type CityConfig struct {
	Name string

	// Areas is the gazetteer table, in declaration order.
	Areas []Area

	// ColloquialNames maps lowercase informal names to canonical forms.
	ColloquialNames map[string]string

	// Misspellings maps lowercase common misspellings to canonical forms.
	Misspellings map[string]string

	// TransitHubs are names that take a "Station" suffix when referenced.
	TransitHubs []string

	// Landmarks are street and landmark names the fallback parser can
	// recognize without capitalization cues.
	Landmarks []string

	// PopularDefaults are suggested when a lookup finds nothing at all.
	PopularDefaults []string

	// DefaultStartLocations picks a start area per time-of-day bucket.
	DefaultStartLocations map[string]string
}

// FindArea looks an area up by name, case-insensitively.
func (c *CityConfig) FindArea(name string) (Area, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, a := range c.Areas {
		if strings.ToLower(a.Name) == needle {
			return a, true
		}
	}
	return Area{}, false
}

// AreaNames returns the table's names in declaration order.
func (c *CityConfig) AreaNames() []string {
	names := make([]string, 0, len(c.Areas))
	for _, a := range c.Areas {
		names = append(names, a.Name)
	}
	return names
}

// QuietAreasNear returns the location's area and its neighbors whose crowd
// level for the bucket is at or below maxCrowd. An unknown location falls
// back to scanning the whole table.
func (c *CityConfig) QuietAreasNear(location, bucket string, maxCrowd int) []Area {
	if area, ok := c.FindArea(location); ok {
		var out []Area
		if area.CrowdLevelFor(bucket) <= maxCrowd {
			out = append(out, area)
		}
		for _, n := range area.Neighbors {
			if na, ok := c.FindArea(n); ok && na.CrowdLevelFor(bucket) <= maxCrowd {
				out = append(out, na)
			}
		}
		return out
	}

	var out []Area
	for _, a := range c.Areas {
		if a.CrowdLevelFor(bucket) <= maxCrowd {
			out = append(out, a)
		}
	}
	return out
}

// AreasMatching returns areas whose characteristics or popular-for entries
// overlap the requirements, excluding the named current location.
func (c *CityConfig) AreasMatching(requirements []string, exclude string) []Area {
	if len(requirements) == 0 {
		return nil
	}

	wanted := make([]string, 0, len(requirements))
	for _, r := range requirements {
		r = strings.ToLower(strings.TrimSpace(r))
		if r != "" {
			wanted = append(wanted, r)
		}
	}

	excludeLower := strings.ToLower(strings.TrimSpace(exclude))
	var out []Area
	for _, a := range c.Areas {
		if strings.ToLower(a.Name) == excludeLower {
			continue
		}
		if overlapsAny(a.Characteristics, wanted) || overlapsAny(a.PopularFor, wanted) {
			out = append(out, a)
		}
	}
	return out
}

// DefaultStartFor returns the configured start area for a time bucket.
func (c *CityConfig) DefaultStartFor(bucket string) string {
	if loc, ok := c.DefaultStartLocations[bucket]; ok {
		return loc
	}
	if len(c.PopularDefaults) > 0 {
		return c.PopularDefaults[0]
	}
	return c.Name
}

// IsTransitHub reports whether name matches a configured hub, ignoring case
// and an existing "Station" suffix. The second return is the canonical hub.
func (c *CityConfig) IsTransitHub(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	needle = strings.TrimSuffix(needle, " station")
	for _, hub := range c.TransitHubs {
		if strings.ToLower(hub) == needle {
			return hub, true
		}
	}
	return "", false
}

func overlapsAny(values, wanted []string) bool {
	for _, v := range values {
		lv := strings.ToLower(v)
		for _, w := range wanted {
			if lv == w || strings.Contains(lv, w) || strings.Contains(w, lv) {
				return true
			}
		}
	}
	return false
}

// ForCity returns the built-in config matching a city key.
func ForCity(name string) (*CityConfig, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "london":
		return LondonConfig(), true
	case "newyork", "new york", "nyc":
		return NewYorkConfig(), true
	default:
		return nil, false
	}
}
