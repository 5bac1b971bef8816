package services

import (
	"context"
	"fmt"
	"log"
	"wander/internal/models/db_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (*response_models.Place, error)
	ListPlaces(ctx context.Context, city string, page, pageSize int) ([]response_models.Place, error)
	SearchPlaces(ctx context.Context, name, city string, page, pageSize int) ([]response_models.Place, error)
	LikedPlaces(ctx context.Context, userID string) ([]db_models.TravelPlace, error)
	SimilarPlaces(ctx context.Context, placeID string) ([]response_models.SimilarPlace, error)
}

type PlaceService struct {
	placeRepo     repositories.PlaceRepository
	documentRepo  repositories.DocumentRepository
	embeddingRepo repositories.IPlaceEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	documentRepo repositories.DocumentRepository,
	embeddingRepo repositories.IPlaceEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:     placeRepo,
		documentRepo:  documentRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
	}
}

func (p *PlaceService) GetPlaceByID(ctx context.Context, id string) (*response_models.Place, error) {
	place, err := p.placeRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching place %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	resp := toPlaceResponse(*place)
	return &resp, nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, city string, page, pageSize int) ([]response_models.Place, error) {
	places, err := p.placeRepo.List(ctx, city, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}
	return out, nil
}

func (p *PlaceService) SearchPlaces(ctx context.Context, name, city string, page, pageSize int) ([]response_models.Place, error) {
	places, err := p.placeRepo.SearchByNameAndCity(ctx, name, city, page, pageSize)
	if err != nil {
		log.Printf("Error searching places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}
	return out, nil
}

// LikedPlaces reads the liked_places document. The swipe subsystem
// writes it; this service only ever reads.
func (p *PlaceService) LikedPlaces(ctx context.Context, userID string) ([]db_models.TravelPlace, error) {
	liked, err := loadLikedPlaces(ctx, p.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return liked, nil
}

// SimilarPlaces embeds the place's name and description and looks up
// cosine neighbors in the embedding table.
func (p *PlaceService) SimilarPlaces(ctx context.Context, placeID string) ([]response_models.SimilarPlace, error) {
	place, err := p.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	vector, err := p.embedder.Embed(ctx, fmt.Sprintf("%s: %s", place.Name, place.Description))
	if err != nil {
		log.Printf("Error embedding place %s: %v", placeID, err)
		return nil, utils.ErrSuggestFailed
	}

	rows, err := p.embeddingRepo.ListByVector(vector, placeID)
	if err != nil {
		log.Printf("Error querying similar places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SimilarPlace, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.SimilarPlace{
			Place: response_models.Place{
				ID:          row.PlaceID,
				Name:        row.Name,
				Description: row.Description,
				City:        row.City,
				Tags:        row.Tags,
			},
			Similarity: row.Similarity,
		})
	}
	return out, nil
}

func toPlaceResponse(place db_models.Place) response_models.Place {
	return response_models.Place{
		ID:          place.ID.String(),
		Name:        place.Name,
		Description: place.Description,
		Lat:         place.Latitude,
		Long:        place.Longitude,
		Rating:      place.Rating,
		Image:       place.Image,
		City:        place.City,
		Country:     place.Country,
		Tags:        place.Tags,
	}
}
