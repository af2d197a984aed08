package request_models

import "strings"

type ActivityCategory string

const (
	CategoryRestaurant ActivityCategory = "restaurant"
	CategoryCafe       ActivityCategory = "cafe"
	CategoryBar        ActivityCategory = "bar"
	CategoryMuseum     ActivityCategory = "museum"
	CategoryGallery    ActivityCategory = "gallery"
	CategoryPark       ActivityCategory = "park"
	CategoryActivity   ActivityCategory = "activity"
	CategoryMeeting    ActivityCategory = "meeting"
	CategoryExplore    ActivityCategory = "explore"
	CategoryWalk       ActivityCategory = "walk"
	CategoryTravel     ActivityCategory = "travel"
	CategoryRest       ActivityCategory = "rest"
)

// IsVenue reports whether the category maps onto a searchable venue type.
// Non-venue categories (meetings, strolls, travel legs) become schedule
// entries without a place lookup.
func (c ActivityCategory) IsVenue() bool {
	switch c {
	case CategoryRestaurant, CategoryCafe, CategoryBar, CategoryMuseum,
		CategoryGallery, CategoryPark, CategoryActivity:
		return true
	}
	return false
}

// VenueType returns the place-search type parameter for a venue category.
func (c ActivityCategory) VenueType() string {
	switch c {
	case CategoryRestaurant:
		return "restaurant"
	case CategoryCafe:
		return "cafe"
	case CategoryBar:
		return "bar"
	case CategoryMuseum:
		return "museum"
	case CategoryGallery:
		return "art_gallery"
	case CategoryPark:
		return "park"
	case CategoryActivity:
		return "tourist_attraction"
	default:
		return ""
	}
}

// MoreSpecificThan reports whether c carries more intent than other, so a
// duplicate entry can keep the richer category.
func (c ActivityCategory) MoreSpecificThan(other ActivityCategory) bool {
	return c.specificity() > other.specificity()
}

func (c ActivityCategory) specificity() int {
	switch c {
	case CategoryActivity, CategoryExplore:
		return 0
	default:
		return 1
	}
}

// ParseActivityCategory normalizes a free-form category label. Unknown
// labels collapse to the generic activity category.
func ParseActivityCategory(s string) ActivityCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restaurant", "food", "dining", "lunch", "dinner", "brunch", "breakfast":
		return CategoryRestaurant
	case "cafe", "coffee", "coffee shop":
		return CategoryCafe
	case "bar", "pub", "drinks", "cocktails", "nightlife":
		return CategoryBar
	case "museum":
		return CategoryMuseum
	case "gallery", "art gallery", "art":
		return CategoryGallery
	case "park", "garden", "outdoors":
		return CategoryPark
	case "meeting", "appointment":
		return CategoryMeeting
	case "explore", "wander", "browse":
		return CategoryExplore
	case "walk", "stroll":
		return CategoryWalk
	case "travel", "transit", "train", "flight":
		return CategoryTravel
	case "rest", "break", "relax":
		return CategoryRest
	default:
		return CategoryActivity
	}
}

type FixedTimeEntry struct {
	Location   string           `json:"location"`
	Time       string           `json:"time"`
	Category   ActivityCategory `json:"category"`
	SearchTerm string           `json:"search_term,omitempty"`
	Keywords   []string         `json:"keywords,omitempty"`
	MinRating  float64          `json:"min_rating,omitempty"`
}

type Preferences struct {
	Type         string   `json:"type,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

type StructuredRequest struct {
	RawQuery      string           `json:"raw_query"`
	Date          string           `json:"date,omitempty"`
	StartTime     string           `json:"start_time,omitempty"`
	StartLocation string           `json:"start_location,omitempty"`
	FixedTimes    []FixedTimeEntry `json:"fixed_times"`
	Destinations  []string         `json:"destinations,omitempty"`
	Preferences   Preferences      `json:"preferences"`
	Warnings      []string         `json:"warnings,omitempty"`
}
