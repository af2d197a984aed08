package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dayplanner/cmd/fx/city_fx"
	"dayplanner/cmd/fx/controllers_fx"
	"dayplanner/cmd/fx/location_fx"
	"dayplanner/cmd/fx/model_fx"
	"dayplanner/cmd/fx/parser_fx"
	"dayplanner/cmd/fx/places_fx"
	"dayplanner/cmd/fx/planner_fx"
	"dayplanner/cmd/fx/weather_fx"
	"dayplanner/internal/api/controllers"
	"dayplanner/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	app := fx.New(
		city_fx.Module,
		model_fx.Module,
		places_fx.Module,
		weather_fx.Module,
		location_fx.Module,
		parser_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	healthController *controllers.HealthController) {

	api := r.Group("/api/v1")
	api.POST("/itineraries/build", itineraryController.BuildItineraryHandler)

	r.GET("/health", healthController.HealthHandler)
}
