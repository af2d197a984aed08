package city_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"dayplanner/internal/gazetteer"
)

var Module = fx.Provide(ProvideCityConfig)

// ProvideCityConfig selects the gazetteer for the configured city.
func ProvideCityConfig() *gazetteer.CityConfig {
	name := os.Getenv("CITY")
	if name == "" {
		name = "london"
	}
	cfg, ok := gazetteer.ForCity(name)
	if !ok {
		log.Printf("unknown CITY %q, falling back to london", name)
		cfg, _ = gazetteer.ForCity("london")
	}
	log.Printf("planning for %s (%d areas)", cfg.Name, len(cfg.Areas))
	return cfg
}
