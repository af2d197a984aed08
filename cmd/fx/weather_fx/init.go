package weather_fx

import (
	"os"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/fx"

	"dayplanner/internal/services"
)

var Module = fx.Provide(
	ProvideForecastCache,
	ProvideForecastProvider,
	ProvideWeatherService)

// ProvideForecastCache builds the shared forecast cache with a 30-minute
// TTL, injected rather than hidden behind a package global.
func ProvideForecastCache() *cache.Cache {
	return cache.New(30*time.Minute, 10*time.Minute)
}

func ProvideForecastProvider(forecastCache *cache.Cache) services.ForecastProvider {
	client := services.NewOpenWeatherClient(forecastCache)
	if client == nil {
		return nil
	}
	return client
}

func ProvideWeatherService(provider services.ForecastProvider) services.WeatherServiceInterface {
	enabled := os.Getenv("WEATHER_SUBSTITUTION_ENABLED") != "false"
	return services.NewWeatherService(provider, enabled)
}
