package gazetteer

// NewYorkConfig returns the built-in New York gazetteer.
func NewYorkConfig() *CityConfig {
	return &CityConfig{
		Name: "New York",
		Areas: []Area{
			{
				Name:            "Greenwich Village",
				Kind:            KindNeighborhood,
				Characteristics: []string{"bohemian", "dining", "jazz", "historic"},
				Neighbors:       []string{"West Village", "East Village", "SoHo"},
				PopularFor:      []string{"jazz clubs", "restaurants", "cafes"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 4, Weekend: 4},
			},
			{
				Name:            "West Village",
				Kind:            KindNeighborhood,
				Characteristics: []string{"quaint", "brownstones", "dining", "quiet"},
				Neighbors:       []string{"Greenwich Village", "Chelsea"},
				PopularFor:      []string{"brunch", "wine bars", "boutiques"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 3, Weekend: 4},
			},
			{
				Name:            "East Village",
				Kind:            KindNeighborhood,
				Characteristics: []string{"nightlife", "dive bars", "eclectic", "lively"},
				Neighbors:       []string{"Greenwich Village", "Lower East Side", "NoLita", "Gramercy"},
				PopularFor:      []string{"bars", "late-night food", "vintage shopping"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 3, Evening: 5, Weekend: 5},
			},
			{
				Name:            "SoHo",
				Kind:            KindNeighborhood,
				Characteristics: []string{"shopping", "galleries", "cast-iron architecture", "trendy"},
				Neighbors:       []string{"Greenwich Village", "NoLita", "Tribeca"},
				PopularFor:      []string{"shopping", "art galleries", "cafes"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 5, Evening: 3, Weekend: 5},
			},
			{
				Name:            "NoLita",
				Kind:            KindNeighborhood,
				Characteristics: []string{"boutiques", "cafes", "trendy", "quiet"},
				Neighbors:       []string{"SoHo", "Lower East Side", "East Village"},
				PopularFor:      []string{"boutiques", "coffee", "brunch"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 3, Weekend: 4},
			},
			{
				Name:            "Lower East Side",
				Kind:            KindNeighborhood,
				Characteristics: []string{"nightlife", "music venues", "historic", "eclectic"},
				Neighbors:       []string{"East Village", "NoLita"},
				PopularFor:      []string{"live music", "bars", "delis"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 5, Weekend: 4},
			},
			{
				Name:            "Tribeca",
				Kind:            KindNeighborhood,
				Characteristics: []string{"upscale", "lofts", "dining", "quiet"},
				Neighbors:       []string{"SoHo", "Financial District"},
				PopularFor:      []string{"fine dining", "galleries"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 2, Evening: 3, Weekend: 2},
			},
			{
				Name:            "Financial District",
				Kind:            KindNeighborhood,
				Characteristics: []string{"financial", "historic", "architecture"},
				Neighbors:       []string{"Tribeca", "Brooklyn Heights"},
				PopularFor:      []string{"landmarks", "viewpoints"},
				CrowdLevels:     CrowdLevels{Morning: 4, Afternoon: 4, Evening: 2, Weekend: 2},
			},
			{
				Name:            "Chelsea",
				Kind:            KindNeighborhood,
				Characteristics: []string{"galleries", "markets", "nightlife"},
				Neighbors:       []string{"West Village", "Flatiron", "Midtown"},
				PopularFor:      []string{"art galleries", "food halls", "the High Line"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 4, Weekend: 4},
			},
			{
				Name:            "Flatiron",
				Kind:            KindNeighborhood,
				Characteristics: []string{"architecture", "shopping", "dining"},
				Neighbors:       []string{"Chelsea", "Gramercy", "Midtown"},
				PopularFor:      []string{"restaurants", "shopping"},
				CrowdLevels:     CrowdLevels{Morning: 3, Afternoon: 4, Evening: 3, Weekend: 3},
			},
			{
				Name:            "Gramercy",
				Kind:            KindNeighborhood,
				Characteristics: []string{"residential", "historic", "quiet"},
				Neighbors:       []string{"Flatiron", "East Village"},
				PopularFor:      []string{"quiet parks", "taverns"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 2, Weekend: 2},
			},
			{
				Name:            "Midtown",
				Kind:            KindArea,
				Characteristics: []string{"landmarks", "theatre", "shopping", "busy"},
				Neighbors:       []string{"Chelsea", "Flatiron", "Hell's Kitchen", "Upper East Side", "Upper West Side"},
				PopularFor:      []string{"theatre", "landmarks", "shopping"},
				CrowdLevels:     CrowdLevels{Morning: 4, Afternoon: 5, Evening: 5, Weekend: 5},
			},
			{
				Name:            "Hell's Kitchen",
				Kind:            KindNeighborhood,
				Characteristics: []string{"dining", "theatre district", "lively"},
				Neighbors:       []string{"Midtown", "Upper West Side"},
				PopularFor:      []string{"pre-theatre dining", "bars"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 5, Weekend: 4},
			},
			{
				Name:            "Upper East Side",
				Kind:            KindNeighborhood,
				Characteristics: []string{"museums", "upscale", "residential", "quiet"},
				Neighbors:       []string{"Midtown", "Harlem"},
				PopularFor:      []string{"museums", "brunch"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 2, Weekend: 3},
			},
			{
				Name:            "Upper West Side",
				Kind:            KindNeighborhood,
				Characteristics: []string{"residential", "parks", "culture", "quiet"},
				Neighbors:       []string{"Midtown", "Harlem", "Hell's Kitchen"},
				PopularFor:      []string{"parks", "bagels", "concert halls"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 2, Weekend: 3},
			},
			{
				Name:            "Harlem",
				Kind:            KindNeighborhood,
				Characteristics: []string{"jazz", "soul food", "historic", "culture"},
				Neighbors:       []string{"Upper East Side", "Upper West Side"},
				PopularFor:      []string{"jazz clubs", "soul food"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 2, Evening: 3, Weekend: 3},
			},
			{
				Name:            "Williamsburg",
				Kind:            KindNeighborhood,
				Characteristics: []string{"trendy", "nightlife", "vintage", "waterfront"},
				Neighbors:       []string{"Greenpoint", "DUMBO"},
				PopularFor:      []string{"bars", "vintage shopping", "food halls"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 5, Weekend: 5},
			},
			{
				Name:            "Greenpoint",
				Kind:            KindNeighborhood,
				Characteristics: []string{"cafes", "waterfront", "quiet", "polish bakeries"},
				Neighbors:       []string{"Williamsburg", "Long Island City"},
				PopularFor:      []string{"coffee", "waterfront parks"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 2, Evening: 3, Weekend: 3},
			},
			{
				Name:            "DUMBO",
				Kind:            KindNeighborhood,
				Characteristics: []string{"waterfront", "galleries", "views", "cobblestones"},
				Neighbors:       []string{"Brooklyn Heights", "Williamsburg"},
				PopularFor:      []string{"bridge views", "galleries", "ice cream"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 3, Weekend: 5},
			},
			{
				Name:            "Brooklyn Heights",
				Kind:            KindNeighborhood,
				Characteristics: []string{"brownstones", "promenade", "historic", "quiet"},
				Neighbors:       []string{"DUMBO", "Financial District"},
				PopularFor:      []string{"promenade walks", "brownstone streets"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 2, Weekend: 3},
			},
			{
				Name:            "Long Island City",
				Kind:            KindNeighborhood,
				Characteristics: []string{"art", "waterfront", "modern", "quiet"},
				Neighbors:       []string{"Greenpoint"},
				PopularFor:      []string{"art museums", "skyline views"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 2, Weekend: 2},
			},
		},
		ColloquialNames: map[string]string{
			"the village":   "Greenwich Village",
			"fidi":          "Financial District",
			"soho":          "SoHo",
			"nolita":        "NoLita",
			"dumbo":         "DUMBO",
			"lic":           "Long Island City",
			"the les":       "Lower East Side",
			"alphabet city": "East Village",
		},
		Misspellings: map[string]string{
			"greenwhich village": "Greenwich Village",
			"grenwich village":   "Greenwich Village",
			"willamsburg":        "Williamsburg",
			"williamsberg":       "Williamsburg",
			"tribecca":           "Tribeca",
			"flat iron":          "Flatiron",
			"times sqaure":       "Times Square",
			"time square":        "Times Square",
		},
		TransitHubs: []string{"Grand Central", "Penn"},
		Landmarks: []string{
			"Times Square", "Central Park", "Fifth Avenue", "Broadway",
			"Wall Street", "High Line", "Union Square",
			"Washington Square Park", "Brooklyn Bridge",
			"Rockefeller Center", "Bryant Park", "Madison Square Park",
		},
		PopularDefaults: []string{"Greenwich Village", "SoHo", "Williamsburg"},
		DefaultStartLocations: map[string]string{
			"morning":   "Greenwich Village",
			"afternoon": "SoHo",
			"evening":   "East Village",
			"weekend":   "Williamsburg",
		},
	}
}
