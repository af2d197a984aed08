package gazetteer

import (
	"strings"
	"testing"
)

func allConfigs() []*CityConfig {
	return []*CityConfig{LondonConfig(), NewYorkConfig()}
}

// knownName reports whether a canonical name appears somewhere in the
// config's tables. Normalizer output must always land on one of these.
func knownName(c *CityConfig, name string) bool {
	if _, ok := c.FindArea(name); ok {
		return true
	}
	if _, ok := c.IsTransitHub(name); ok {
		return true
	}
	for _, l := range c.Landmarks {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

func TestAreaTablesAreClosed(t *testing.T) {
	for _, cfg := range allConfigs() {
		t.Run(cfg.Name, func(t *testing.T) {
			for _, a := range cfg.Areas {
				for _, n := range a.Neighbors {
					if _, ok := cfg.FindArea(n); !ok {
						t.Errorf("%s: neighbor %q does not resolve to an area", a.Name, n)
					}
				}
				levels := map[string]int{
					"morning":   a.CrowdLevels.Morning,
					"afternoon": a.CrowdLevels.Afternoon,
					"evening":   a.CrowdLevels.Evening,
					"weekend":   a.CrowdLevels.Weekend,
				}
				for bucket, lvl := range levels {
					if lvl < 1 || lvl > 5 {
						t.Errorf("%s: %s crowd level %d out of range", a.Name, bucket, lvl)
					}
				}
			}
		})
	}
}

func TestLookupTablesPointAtKnownNames(t *testing.T) {
	for _, cfg := range allConfigs() {
		t.Run(cfg.Name, func(t *testing.T) {
			for from, to := range cfg.ColloquialNames {
				if !knownName(cfg, to) {
					t.Errorf("colloquial %q maps to unknown name %q", from, to)
				}
			}
			for from, to := range cfg.Misspellings {
				if !knownName(cfg, to) {
					t.Errorf("misspelling %q maps to unknown name %q", from, to)
				}
			}
			for bucket, loc := range cfg.DefaultStartLocations {
				if !knownName(cfg, loc) {
					t.Errorf("default start for %s is unknown name %q", bucket, loc)
				}
			}
			for _, d := range cfg.PopularDefaults {
				if !knownName(cfg, d) {
					t.Errorf("popular default %q is not a known name", d)
				}
			}
		})
	}
}

func TestFindAreaIgnoresCase(t *testing.T) {
	cfg := LondonConfig()

	for _, name := range []string{"soho", "SOHO", " Soho "} {
		if _, ok := cfg.FindArea(name); !ok {
			t.Errorf("FindArea(%q) = false, want true", name)
		}
	}
	if _, ok := cfg.FindArea("Atlantis"); ok {
		t.Error("FindArea(Atlantis) = true, want false")
	}
}

func TestQuietAreasNear(t *testing.T) {
	cfg := LondonConfig()

	quiet := cfg.QuietAreasNear("Soho", "afternoon", 2)
	var names []string
	for _, a := range quiet {
		names = append(names, a.Name)
	}
	found := false
	for _, n := range names {
		if n == "Fitzrovia" {
			found = true
		}
		if n == "Soho" {
			t.Errorf("Soho itself is crowded in the afternoon, should not appear in %v", names)
		}
	}
	if !found {
		t.Errorf("expected Fitzrovia among quiet neighbors of Soho, got %v", names)
	}

	// Unknown anchor falls back to scanning the whole table.
	all := cfg.QuietAreasNear("Narnia", "morning", 1)
	if len(all) == 0 {
		t.Error("expected at least one quiet area city-wide in the morning")
	}
}

func TestAreasMatchingExcludesCurrentLocation(t *testing.T) {
	cfg := LondonConfig()

	matches := cfg.AreasMatching([]string{"markets"}, "Camden")
	if len(matches) == 0 {
		t.Fatal("expected at least one market area besides Camden")
	}
	for _, a := range matches {
		if a.Name == "Camden" {
			t.Error("excluded area Camden still present in matches")
		}
	}

	if got := cfg.AreasMatching(nil, ""); got != nil {
		t.Errorf("AreasMatching(nil) = %v, want nil", got)
	}
}

func TestIsTransitHub(t *testing.T) {
	cfg := LondonConfig()

	tests := []struct {
		in       string
		wantHub  string
		wantBool bool
	}{
		{"King's Cross", "King's Cross", true},
		{"king's cross station", "King's Cross", true},
		{"PADDINGTON", "Paddington", true},
		{"Soho", "", false},
	}
	for _, tt := range tests {
		hub, ok := cfg.IsTransitHub(tt.in)
		if ok != tt.wantBool || hub != tt.wantHub {
			t.Errorf("IsTransitHub(%q) = (%q, %v), want (%q, %v)", tt.in, hub, ok, tt.wantHub, tt.wantBool)
		}
	}
}

func TestForCity(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"london", "London", true},
		{"London", "London", true},
		{"nyc", "New York", true},
		{"new york", "New York", true},
		{"paris", "", false},
	}
	for _, tt := range tests {
		cfg, ok := ForCity(tt.in)
		if ok != tt.ok {
			t.Errorf("ForCity(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && cfg.Name != tt.want {
			t.Errorf("ForCity(%q).Name = %q, want %q", tt.in, cfg.Name, tt.want)
		}
	}
}
