package location_fx

import (
	"go.uber.org/fx"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/services"
)

var Module = fx.Provide(ProvideLocationService)

func ProvideLocationService(cfg *gazetteer.CityConfig, resolver services.VenueResolver) services.LocationServiceInterface {
	return services.NewLocationService(cfg, resolver)
}
