package places_fx

import (
	"go.uber.org/fx"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/services"
)

var Module = fx.Provide(ProvideVenueResolver)

func ProvideVenueResolver(cfg *gazetteer.CityConfig) services.VenueResolver {
	return services.NewPlacesSearchClient(cfg.Name)
}
