package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/response_models"
)

type fakeGeocoder struct {
	canonical string
	err       error
}

func (f *fakeGeocoder) Resolve(ctx context.Context, search VenueSearch) (*response_models.Place, error) {
	return nil, errors.New("not used")
}

func (f *fakeGeocoder) CanonicalName(ctx context.Context, location string) (string, error) {
	return f.canonical, f.err
}

func TestNormalizeLondonNames(t *testing.T) {
	svc := NewLocationService(gazetteer.LondonConfig(), nil)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"colloquial", "the west end", "West End"},
		{"colloquial square mile", "the square mile", "City of London"},
		{"misspelling", "greenwhich", "Greenwich"},
		{"misspelt landmark", "picadilly", "Piccadilly Circus"},
		{"transit hub gets suffix", "kings cross", "King's Cross Station"},
		{"transit hub keeps suffix", "paddington station", "Paddington Station"},
		{"transit hub any case", "PADDINGTON", "Paddington Station"},
		{"plain area capitalized", "covent garden", "Covent Garden"},
		{"connectors stay lower", "city of london", "City of London"},
		{"hyphenated", "stoke-newington", "Stoke-Newington"},
		{"whitespace trimmed", "  soho  ", "Soho"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.Normalize(tc.in))
		})
	}
}

func TestNormalizeNewYorkNames(t *testing.T) {
	svc := NewLocationService(gazetteer.NewYorkConfig(), nil)

	assert.Equal(t, "Greenwich Village", svc.Normalize("the village"))
	assert.Equal(t, "Greenwich Village", svc.Normalize("greenwhich village"))
	assert.Equal(t, "DUMBO", svc.Normalize("dumbo"))
	assert.Equal(t, "Financial District", svc.Normalize("fidi"))
	assert.Equal(t, "Williamsburg", svc.Normalize("willamsburg"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	svc := NewLocationService(gazetteer.LondonConfig(), nil)

	inputs := []string{
		"the west end", "kings cross", "greenwhich", "covent garden",
		"city of london", "notting hill gate", "soho",
	}
	for _, in := range inputs {
		once := svc.Normalize(in)
		assert.Equal(t, once, svc.Normalize(once), "normalizing %q twice drifted", in)
	}
}

func TestVerifyMatch(t *testing.T) {
	svc := NewLocationService(gazetteer.LondonConfig(), nil)

	cases := []struct {
		name      string
		requested string
		returned  string
		tags      []string
		want      bool
	}{
		{"exact", "Soho", "Soho", nil, true},
		{"exact ignores case", "soho", "SOHO", nil, true},
		{"returned contains requested", "Soho", "Soho, London", nil, true},
		{"requested contains returned", "Camden Town Market", "Camden Town", nil, true},
		{"word majority", "Covent Garden Piazza", "Covent Garden, London", nil, true},
		{"unrelated areas", "Soho", "Hampstead", nil, false},
		{"single word needs area tag", "southbank", "South Bank Centre", nil, false},
		{"single word with area tag", "southbank", "South Bank Centre", []string{"political"}, true},
		{"adjacent areas need tag", "Soho", "Mayfair", nil, false},
		{"adjacent areas with tag", "Soho", "Mayfair", []string{"neighborhood"}, true},
		{"non-adjacent with tag", "Soho", "Greenwich", []string{"neighborhood"}, false},
		{"empty requested", "", "Soho", nil, false},
		{"empty returned", "Soho", "", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.VerifyMatch(tc.requested, tc.returned, tc.tags))
		})
	}
}

func TestSuggestAlternatives(t *testing.T) {
	svc := NewLocationService(gazetteer.LondonConfig(), nil)

	t.Run("exact area name ranks first", func(t *testing.T) {
		got := svc.SuggestAlternatives("soho")
		assert.NotEmpty(t, got)
		assert.Equal(t, "Soho", got[0])
	})

	t.Run("prefix match", func(t *testing.T) {
		got := svc.SuggestAlternatives("camden")
		assert.Contains(t, got, "Camden")
	})

	t.Run("substring match", func(t *testing.T) {
		got := svc.SuggestAlternatives("green")
		assert.Contains(t, got, "Greenwich")
	})

	t.Run("caps at three", func(t *testing.T) {
		got := svc.SuggestAlternatives("o")
		assert.LessOrEqual(t, len(got), 3)
	})

	t.Run("no match falls back to popular defaults", func(t *testing.T) {
		got := svc.SuggestAlternatives("xyzzy")
		assert.Equal(t, []string{"Soho", "Covent Garden", "South Bank"}, got)
	})

	t.Run("empty input gets popular defaults", func(t *testing.T) {
		got := svc.SuggestAlternatives("")
		assert.Equal(t, []string{"Soho", "Covent Garden", "South Bank"}, got)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := svc.SuggestAlternatives("c")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, svc.SuggestAlternatives("c"))
		}
	})
}

func TestSuggestAlternativesNewYork(t *testing.T) {
	svc := NewLocationService(gazetteer.NewYorkConfig(), nil)

	got := svc.SuggestAlternatives("greenwich")
	assert.Contains(t, got, "Greenwich Village")
}

func TestNormalizeViaGeocoder(t *testing.T) {
	cfg := gazetteer.LondonConfig()

	t.Run("nil resolver returns input", func(t *testing.T) {
		svc := NewLocationService(cfg, nil)
		assert.Equal(t, "Peckham", svc.NormalizeViaGeocoder(context.Background(), "Peckham"))
	})

	t.Run("resolver canonical wins", func(t *testing.T) {
		svc := NewLocationService(cfg, &fakeGeocoder{canonical: "Peckham, London"})
		assert.Equal(t, "Peckham, London", svc.NormalizeViaGeocoder(context.Background(), "peckham"))
	})

	t.Run("resolver failure returns input", func(t *testing.T) {
		svc := NewLocationService(cfg, &fakeGeocoder{err: errors.New("quota exceeded")})
		assert.Equal(t, "peckham", svc.NormalizeViaGeocoder(context.Background(), "peckham"))
	})

	t.Run("blank input untouched", func(t *testing.T) {
		svc := NewLocationService(cfg, &fakeGeocoder{canonical: "Somewhere"})
		assert.Equal(t, "  ", svc.NormalizeViaGeocoder(context.Background(), "  "))
	})
}
