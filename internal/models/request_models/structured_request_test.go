package request_models

import "testing"

func TestIsVenue(t *testing.T) {
	venues := []ActivityCategory{
		CategoryRestaurant, CategoryCafe, CategoryBar, CategoryMuseum,
		CategoryGallery, CategoryPark, CategoryActivity,
	}
	for _, c := range venues {
		if !c.IsVenue() {
			t.Errorf("%s.IsVenue() = false, want true", c)
		}
	}

	nonVenues := []ActivityCategory{
		CategoryMeeting, CategoryExplore, CategoryWalk, CategoryTravel, CategoryRest,
	}
	for _, c := range nonVenues {
		if c.IsVenue() {
			t.Errorf("%s.IsVenue() = true, want false", c)
		}
	}
}

func TestVenueType(t *testing.T) {
	cases := []struct {
		category ActivityCategory
		want     string
	}{
		{CategoryRestaurant, "restaurant"},
		{CategoryGallery, "art_gallery"},
		{CategoryActivity, "tourist_attraction"},
		{CategoryMeeting, ""},
		{CategoryWalk, ""},
	}
	for _, tc := range cases {
		if got := tc.category.VenueType(); got != tc.want {
			t.Errorf("%s.VenueType() = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestMoreSpecificThan(t *testing.T) {
	if !CategoryRestaurant.MoreSpecificThan(CategoryActivity) {
		t.Error("restaurant should outrank the generic activity category")
	}
	if !CategoryMuseum.MoreSpecificThan(CategoryExplore) {
		t.Error("museum should outrank explore")
	}
	if CategoryActivity.MoreSpecificThan(CategoryRestaurant) {
		t.Error("generic activity should not outrank restaurant")
	}
	if CategoryRestaurant.MoreSpecificThan(CategoryCafe) {
		t.Error("two concrete categories should tie")
	}
	if CategoryActivity.MoreSpecificThan(CategoryExplore) {
		t.Error("two generic categories should tie")
	}
}

func TestParseActivityCategory(t *testing.T) {
	cases := []struct {
		in   string
		want ActivityCategory
	}{
		{"restaurant", CategoryRestaurant},
		{"DINING", CategoryRestaurant},
		{" coffee shop ", CategoryCafe},
		{"pub", CategoryBar},
		{"art gallery", CategoryGallery},
		{"garden", CategoryPark},
		{"appointment", CategoryMeeting},
		{"wander", CategoryExplore},
		{"stroll", CategoryWalk},
		{"flight", CategoryTravel},
		{"relax", CategoryRest},
		{"quidditch", CategoryActivity},
		{"", CategoryActivity},
	}
	for _, tc := range cases {
		if got := ParseActivityCategory(tc.in); got != tc.want {
			t.Errorf("ParseActivityCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
