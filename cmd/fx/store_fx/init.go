package store_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"time"
	"wander/internal/repositories"
	"wander/pkg/events"
	"wander/pkg/utils"
)

var Module = fx.Provide(
	provideDocumentRepo,
	provideCoinBus,
	provideShuffler,
)

func provideDocumentRepo(db *gorm.DB) repositories.DocumentRepository {
	return repositories.NewDocumentRepository(db)
}

func provideCoinBus() events.CoinBus {
	return events.NewCoinBus()
}

func provideShuffler() utils.Shuffler {
	return utils.NewShuffler(time.Now().UnixNano())
}
