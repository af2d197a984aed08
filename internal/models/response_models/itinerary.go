package response_models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Place struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Address      string       `json:"address,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	CategoryTags []string     `json:"category_tags,omitempty"`
	Rating       float64      `json:"rating,omitempty"`
	Alternatives []Place      `json:"alternatives,omitempty"`
}

type ScheduledStop struct {
	Venue              Place   `json:"venue"`
	Time               string  `json:"time"`
	IsFixed            bool    `json:"is_fixed"`
	Area               string  `json:"area,omitempty"`
	WeatherSuitable    bool    `json:"weather_suitable"`
	WeatherNote        string  `json:"weather_note,omitempty"`
	IndoorAlternatives []Place `json:"indoor_alternatives,omitempty"`
}

type TravelSegment struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DurationMinutes int    `json:"duration_minutes"`
	ArrivalTime     string `json:"arrival_time,omitempty"`
}

type Itinerary struct {
	Query       string          `json:"query"`
	Date        string          `json:"date,omitempty"`
	Places      []ScheduledStop `json:"places"`
	TravelTimes []TravelSegment `json:"travelTimes"`
	Created     string          `json:"created"`
	Warnings    []string        `json:"warnings,omitempty"`
}
