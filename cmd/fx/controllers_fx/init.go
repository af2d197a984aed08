package controllers_fx

import (
	"go.uber.org/fx"

	"dayplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewHealthController))
