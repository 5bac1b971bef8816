package itinerary_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/utils"
)

var Module = fx.Provide(provideItineraryService, provideItineraryController)

func provideItineraryService(documentRepo repositories.DocumentRepository, shuffler utils.Shuffler) services.ItineraryServiceInterface {
	return services.NewItineraryService(documentRepo, shuffler)
}

func provideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	suggestService services.SuggestServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, suggestService)
}
