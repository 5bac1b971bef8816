package journey_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/events"
)

var Module = fx.Provide(provideJourneyService, provideJourneyController)

func provideJourneyService(
	documentRepo repositories.DocumentRepository,
	coinService services.CoinServiceInterface,
	historyService services.HistoryServiceInterface,
	bus events.CoinBus,
) services.JourneyServiceInterface {
	return services.NewJourneyService(documentRepo, coinService, historyService, bus)
}

func provideJourneyController(journeyService services.JourneyServiceInterface) *controllers.JourneyController {
	return controllers.NewJourneyController(journeyService)
}
