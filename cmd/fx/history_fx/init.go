package history_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideHistoryService, provideHistoryController)

func provideHistoryService(documentRepo repositories.DocumentRepository) services.HistoryServiceInterface {
	return services.NewHistoryService(documentRepo)
}

func provideHistoryController(historyService services.HistoryServiceInterface) *controllers.HistoryController {
	return controllers.NewHistoryController(historyService)
}
