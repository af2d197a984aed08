package planner_fx

import (
	"go.uber.org/fx"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/services"
)

var Module = fx.Provide(
	ProvideTravelService,
	ProvideSchedulerService,
	ProvideItineraryService)

func ProvideTravelService() services.TravelServiceInterface {
	return services.NewTravelService()
}

func ProvideSchedulerService(cfg *gazetteer.CityConfig, resolver services.VenueResolver) services.SchedulerServiceInterface {
	return services.NewSchedulerService(cfg, resolver)
}

// ProvideItineraryService wires the full build pipeline.
func ProvideItineraryService(
	parser services.ParserServiceInterface,
	location services.LocationServiceInterface,
	resolver services.VenueResolver,
	scheduler services.SchedulerServiceInterface,
	weather services.WeatherServiceInterface,
	travel services.TravelServiceInterface,
	cfg *gazetteer.CityConfig,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(parser, location, resolver, scheduler, weather, travel, cfg)
}
