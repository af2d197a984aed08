package gazetteer

// LondonConfig returns the built-in London gazetteer.
func LondonConfig() *CityConfig {
	return &CityConfig{
		Name: "London",
		Areas: []Area{
			{
				Name:            "Soho",
				Kind:            KindNeighborhood,
				Characteristics: []string{"nightlife", "dining", "theatre", "lively"},
				Neighbors:       []string{"Mayfair", "Covent Garden", "Fitzrovia"},
				PopularFor:      []string{"restaurants", "bars", "live music"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 5, Weekend: 5},
			},
			{
				Name:            "Mayfair",
				Kind:            KindNeighborhood,
				Characteristics: []string{"upscale", "dining", "galleries", "shopping"},
				Neighbors:       []string{"Soho", "Marylebone", "Knightsbridge", "Westminster"},
				PopularFor:      []string{"fine dining", "art galleries", "luxury shopping"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 4, Weekend: 3},
			},
			{
				Name:            "Covent Garden",
				Kind:            KindNeighborhood,
				Characteristics: []string{"shopping", "theatre", "street performers", "lively"},
				Neighbors:       []string{"Soho", "Holborn", "Bloomsbury"},
				PopularFor:      []string{"markets", "theatre", "boutiques"},
				CrowdLevels:     CrowdLevels{Morning: 3, Afternoon: 5, Evening: 4, Weekend: 5},
			},
			{
				Name:            "West End",
				Kind:            KindArea,
				Characteristics: []string{"theatre", "shopping", "dining", "lively"},
				Neighbors:       []string{"Soho", "Covent Garden", "Mayfair"},
				PopularFor:      []string{"theatre", "shopping", "restaurants"},
				CrowdLevels:     CrowdLevels{Morning: 3, Afternoon: 5, Evening: 5, Weekend: 5},
			},
			{
				Name:            "Fitzrovia",
				Kind:            KindNeighborhood,
				Characteristics: []string{"quiet", "cafes", "media offices", "georgian streets"},
				Neighbors:       []string{"Soho", "Marylebone", "Bloomsbury"},
				PopularFor:      []string{"cafes", "independent restaurants"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 2, Weekend: 1},
			},
			{
				Name:            "Marylebone",
				Kind:            KindNeighborhood,
				Characteristics: []string{"village feel", "boutiques", "quiet", "upscale"},
				Neighbors:       []string{"Mayfair", "Fitzrovia"},
				PopularFor:      []string{"boutiques", "delis", "bookshops"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 2, Evening: 2, Weekend: 3},
			},
			{
				Name:            "Bloomsbury",
				Kind:            KindNeighborhood,
				Characteristics: []string{"literary", "museums", "garden squares", "quiet"},
				Neighbors:       []string{"Covent Garden", "Fitzrovia", "Holborn"},
				PopularFor:      []string{"museums", "bookshops", "squares"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 1, Weekend: 2},
			},
			{
				Name:            "Holborn",
				Kind:            KindNeighborhood,
				Characteristics: []string{"legal quarter", "historic", "pubs"},
				Neighbors:       []string{"Covent Garden", "Bloomsbury", "Clerkenwell", "City of London"},
				PopularFor:      []string{"historic pubs", "museums"},
				CrowdLevels:     CrowdLevels{Morning: 3, Afternoon: 3, Evening: 2, Weekend: 1},
			},
			{
				Name:            "Clerkenwell",
				Kind:            KindNeighborhood,
				Characteristics: []string{"design studios", "food scene", "historic", "quiet"},
				Neighbors:       []string{"Holborn", "Islington", "City of London", "Shoreditch"},
				PopularFor:      []string{"restaurants", "craft cocktails"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 2, Evening: 3, Weekend: 1},
			},
			{
				Name:            "Shoreditch",
				Kind:            KindNeighborhood,
				Characteristics: []string{"trendy", "street art", "nightlife", "vintage"},
				Neighbors:       []string{"Clerkenwell", "City of London"},
				PopularFor:      []string{"street art", "vintage shopping", "bars"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 5, Weekend: 5},
			},
			{
				Name:            "City of London",
				Kind:            KindBorough,
				Characteristics: []string{"financial", "historic", "architecture"},
				Neighbors:       []string{"Holborn", "Clerkenwell", "Shoreditch", "South Bank"},
				PopularFor:      []string{"historic churches", "viewpoints"},
				CrowdLevels:     CrowdLevels{Morning: 4, Afternoon: 4, Evening: 2, Weekend: 1},
			},
			{
				Name:            "South Bank",
				Kind:            KindArea,
				Characteristics: []string{"riverside", "culture", "galleries", "walks"},
				Neighbors:       []string{"Westminster", "City of London"},
				PopularFor:      []string{"galleries", "riverside walks", "food markets"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 4, Weekend: 5},
			},
			{
				Name:            "Westminster",
				Kind:            KindBorough,
				Characteristics: []string{"landmarks", "historic", "government"},
				Neighbors:       []string{"Mayfair", "South Bank"},
				PopularFor:      []string{"landmarks", "royal parks"},
				CrowdLevels:     CrowdLevels{Morning: 3, Afternoon: 5, Evening: 3, Weekend: 5},
			},
			{
				Name:            "Knightsbridge",
				Kind:            KindNeighborhood,
				Characteristics: []string{"luxury shopping", "upscale", "museums"},
				Neighbors:       []string{"Mayfair", "Chelsea", "Kensington"},
				PopularFor:      []string{"department stores", "museums"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 3, Weekend: 4},
			},
			{
				Name:            "Chelsea",
				Kind:            KindNeighborhood,
				Characteristics: []string{"upscale", "boutiques", "garden squares", "quiet"},
				Neighbors:       []string{"Knightsbridge", "Kensington"},
				PopularFor:      []string{"boutiques", "cafes"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 2, Weekend: 3},
			},
			{
				Name:            "Kensington",
				Kind:            KindNeighborhood,
				Characteristics: []string{"museums", "parks", "upscale", "quiet"},
				Neighbors:       []string{"Knightsbridge", "Chelsea", "Notting Hill"},
				PopularFor:      []string{"museums", "parks"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 2, Weekend: 4},
			},
			{
				Name:            "Notting Hill",
				Kind:            KindNeighborhood,
				Characteristics: []string{"markets", "colourful houses", "vintage", "cafes"},
				Neighbors:       []string{"Kensington"},
				PopularFor:      []string{"markets", "antiques", "brunch"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 2, Weekend: 5},
			},
			{
				Name:            "Camden",
				Kind:            KindNeighborhood,
				Characteristics: []string{"markets", "music", "alternative", "canalside"},
				Neighbors:       []string{"Islington", "Hampstead", "Bloomsbury"},
				PopularFor:      []string{"markets", "live music", "street food"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 4, Evening: 4, Weekend: 5},
			},
			{
				Name:            "Islington",
				Kind:            KindNeighborhood,
				Characteristics: []string{"dining", "theatre", "antiques", "residential"},
				Neighbors:       []string{"Camden", "Clerkenwell"},
				PopularFor:      []string{"restaurants", "antiques", "fringe theatre"},
				CrowdLevels:     CrowdLevels{Morning: 2, Afternoon: 3, Evening: 4, Weekend: 3},
			},
			{
				Name:            "Greenwich",
				Kind:            KindNeighborhood,
				Characteristics: []string{"maritime", "parks", "markets", "historic", "quiet"},
				Neighbors:       []string{"Canary Wharf"},
				PopularFor:      []string{"parks", "markets", "museums"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 1, Weekend: 4},
			},
			{
				Name:            "Canary Wharf",
				Kind:            KindArea,
				Characteristics: []string{"financial", "modern", "riverside"},
				Neighbors:       []string{"Greenwich"},
				PopularFor:      []string{"viewpoints", "waterside dining"},
				CrowdLevels:     CrowdLevels{Morning: 4, Afternoon: 3, Evening: 2, Weekend: 1},
			},
			{
				Name:            "Hampstead",
				Kind:            KindNeighborhood,
				Characteristics: []string{"village feel", "parks", "historic", "quiet"},
				Neighbors:       []string{"Camden"},
				PopularFor:      []string{"heath walks", "cafes", "pubs"},
				CrowdLevels:     CrowdLevels{Morning: 1, Afternoon: 2, Evening: 1, Weekend: 3},
			},
		},
		ColloquialNames: map[string]string{
			"the city":          "City of London",
			"the square mile":   "City of London",
			"the west end":      "West End",
			"the south bank":    "South Bank",
			"southbank":         "South Bank",
			"camden town":       "Camden",
			"kings cross":       "King's Cross",
			"king's cross":      "King's Cross",
			"notting hill gate": "Notting Hill",
		},
		Misspellings: map[string]string{
			"grenwich":         "Greenwich",
			"greenwhich":       "Greenwich",
			"picadilly":        "Piccadilly Circus",
			"piccadily":        "Piccadilly Circus",
			"leicster square":  "Leicester Square",
			"liecester square": "Leicester Square",
			"traflagar square": "Trafalgar Square",
			"marlybone":        "Marylebone",
			"marylebon":        "Marylebone",
		},
		TransitHubs: []string{
			"King's Cross", "Paddington", "Waterloo", "Victoria",
			"Euston", "Liverpool Street", "London Bridge",
		},
		Landmarks: []string{
			"Oxford Street", "Regent Street", "Piccadilly Circus",
			"Trafalgar Square", "Leicester Square", "Carnaby Street",
			"Brick Lane", "Portobello Road", "The Strand",
			"Borough Market", "Tower Bridge", "Hyde Park",
		},
		PopularDefaults: []string{"Soho", "Covent Garden", "South Bank"},
		DefaultStartLocations: map[string]string{
			"morning":   "Covent Garden",
			"afternoon": "Soho",
			"evening":   "Soho",
			"weekend":   "South Bank",
		},
	}
}
