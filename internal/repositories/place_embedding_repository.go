package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type PlaceEmbeddingRow struct {
	db_models.PlaceEmbedding
	Similarity float64
}

type IPlaceEmbeddingRepository interface {
	ListByVector(vector pgvector.Vector, excludePlaceID string) ([]PlaceEmbeddingRow, error)
	CreatePlaceEmbedding(embedding db_models.PlaceEmbedding) error
}

type PlaceEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) IPlaceEmbeddingRepository {
	return &PlaceEmbeddingRepository{db: db}
}

func (p *PlaceEmbeddingRepository) ListByVector(vector pgvector.Vector, excludePlaceID string) ([]PlaceEmbeddingRow, error) {
	var results []PlaceEmbeddingRow

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM place_embeddings
        WHERE place_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := p.db.Raw(query, vecStr, excludePlaceID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (p *PlaceEmbeddingRepository) CreatePlaceEmbedding(embedding db_models.PlaceEmbedding) error {
	return p.db.Create(&embedding).Error
}
