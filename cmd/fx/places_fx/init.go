package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"os"
	"wander/internal/api/controllers"
	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/utils"
)

var Module = fx.Provide(
	providePlaceRepo,
	providePlaceEmbeddingRepo,
	provideEmbeddingClient,
	providePlaceService,
	providePlacesController,
)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceEmbeddingRepo(db *gorm.DB) repositories.IPlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_EMBEDDING_MODEL"))
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	documentRepo repositories.DocumentRepository,
	embeddingRepo repositories.IPlaceEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, documentRepo, embeddingRepo, embedder)
}

func providePlacesController(placeService services.PlaceServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placeService)
}
