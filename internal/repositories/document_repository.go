package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wander/internal/models/db_models"
)

// DocumentRepository is the per-user key-value store. Each logical
// document (active_journey, coin_profile, liked_places) is one row,
// read and replaced whole. Absent documents read as (nil, nil).
type DocumentRepository interface {
	Get(ctx context.Context, userID, docKey string) ([]byte, error)
	Put(ctx context.Context, userID, docKey string, value []byte) error
	Delete(ctx context.Context, userID, docKey string) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Get(ctx context.Context, userID, docKey string) ([]byte, error) {
	var doc db_models.UserDocument
	err := r.db.WithContext(ctx).
		First(&doc, "user_id = ? AND doc_key = ?", userID, docKey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Value, nil
}

func (r *documentRepository) Put(ctx context.Context, userID, docKey string, value []byte) error {
	doc := db_models.UserDocument{
		UserID: userID,
		DocKey: docKey,
		Value:  value,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "doc_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&doc).Error
}

func (r *documentRepository) Delete(ctx context.Context, userID, docKey string) error {
	err := r.db.WithContext(ctx).
		Delete(&db_models.UserDocument{}, "user_id = ? AND doc_key = ?", userID, docKey).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
