package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	List(ctx context.Context, city string, page, pageSize int) ([]db_models.Place, error)
	SearchByNameAndCity(ctx context.Context, name, city string, page, pageSize int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		First(&place, "id = ? AND is_active", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, city string, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	q := r.db.WithContext(ctx).Where("is_active")
	if city != "" && city != "all" {
		q = q.Where("city = ?", city)
	}

	err := q.Offset(offset).
		Limit(pageSize).
		Order("rating DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SearchByNameAndCity(ctx context.Context, name, city string, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	q := r.db.WithContext(ctx).
		Where("is_active").
		Where("name ILIKE ?", "%"+name+"%")
	if city != "" && city != "all" {
		q = q.Where("city = ?", city)
	}

	err := q.Offset(offset).
		Limit(pageSize).
		Order("rating DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
