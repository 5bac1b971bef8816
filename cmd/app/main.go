package main

import (
	"context"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"net/http"
	"os"
	"wander/cmd/fx/coins_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/history_fx"
	"wander/cmd/fx/itinerary_fx"
	"wander/cmd/fx/journey_fx"
	"wander/cmd/fx/places_fx"
	"wander/cmd/fx/store_fx"
	"wander/cmd/fx/suggest_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		store_fx.Module,
		places_fx.Module,
		suggest_fx.Module,
		itinerary_fx.Module,
		coins_fx.Module,
		history_fx.Module,
		journey_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	coinsController *controllers.CoinsController,
	historyController *controllers.HistoryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, placesController, itineraryController, journeyController, coinsController, historyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	coinsController *controllers.CoinsController,
	historyController *controllers.HistoryController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := r.Group("/", middleware.JWTAuthMiddleware())

	placesGroup := authed.Group("/places")
	placesGroup.GET("", placesController.ListPlaces)
	placesGroup.GET("/liked", placesController.GetLikedPlaces)
	placesGroup.GET("/:id", placesController.GetPlaceById)
	placesGroup.GET("/:id/similar", placesController.GetSimilarPlaces)

	itineraryGroup := authed.Group("/itinerary")
	itineraryGroup.POST("/build", itineraryController.BuildRoute)
	itineraryGroup.POST("/move", itineraryController.MovePlace)
	itineraryGroup.POST("/relocate", itineraryController.RelocatePlace)
	itineraryGroup.POST("/remove", itineraryController.RemovePlace)
	itineraryGroup.POST("/swap/alternatives", itineraryController.SwapAlternatives)
	itineraryGroup.POST("/swap", itineraryController.ApplySwap)
	itineraryGroup.POST("/emergency/alternatives", itineraryController.EmergencyAlternatives)
	itineraryGroup.POST("/emergency", itineraryController.ApplyReplace)
	itineraryGroup.POST("/narrate", itineraryController.NarrateTrip)

	journeysGroup := authed.Group("/journeys")
	journeysGroup.POST("/start", journeyController.StartJourney)
	journeysGroup.GET("/active", journeyController.GetActiveJourney)
	journeysGroup.GET("/progress", journeyController.GetProgress)
	journeysGroup.POST("/checkin", journeyController.CheckIn)
	journeysGroup.POST("/navigate", journeyController.Navigate)
	journeysGroup.POST("/abandon", journeyController.AbandonJourney)
	journeysGroup.POST("/finish", journeyController.FinishJourney)

	coinsGroup := authed.Group("/coins")
	coinsGroup.GET("", coinsController.GetBalance)
	coinsGroup.POST("/spend", coinsController.SpendCoins)
	coinsGroup.GET("/events", coinsController.StreamCoinEvents)

	historyGroup := authed.Group("/history")
	historyGroup.GET("", historyController.ListHistory)
	historyGroup.DELETE("", historyController.ClearHistory)
}
