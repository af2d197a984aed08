package parser_fx

import (
	"go.uber.org/fx"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/services"
	"dayplanner/pkg/utils"
)

var Module = fx.Provide(ProvideParserService)

func ProvideParserService(
	model utils.StructuredModelClient,
	attempts []utils.AttemptConfig,
	location services.LocationServiceInterface,
	cfg *gazetteer.CityConfig,
) services.ParserServiceInterface {
	return services.NewParserService(model, attempts, location, cfg)
}
