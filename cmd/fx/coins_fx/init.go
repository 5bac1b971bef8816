package coins_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/events"
)

var Module = fx.Provide(provideCoinService, provideCoinsController)

func provideCoinService(documentRepo repositories.DocumentRepository) services.CoinServiceInterface {
	return services.NewCoinService(documentRepo)
}

func provideCoinsController(coinService services.CoinServiceInterface, bus events.CoinBus) *controllers.CoinsController {
	return controllers.NewCoinsController(coinService, bus)
}
