package services

import (
	"context"
	"wander/internal/models/db_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type HistoryServiceInterface interface {
	Archive(ctx context.Context, userID string, journey db_models.ArchivedJourney) error
	List(ctx context.Context, userID string) ([]response_models.ArchivedJourneyResponse, error)
	Clear(ctx context.Context, userID string) error
}

type HistoryService struct {
	documentRepo repositories.DocumentRepository
}

func NewHistoryService(documentRepo repositories.DocumentRepository) HistoryServiceInterface {
	return &HistoryService{documentRepo: documentRepo}
}

// Archive prepends the snapshot, keeping the history newest-first.
func (h *HistoryService) Archive(ctx context.Context, userID string, journey db_models.ArchivedJourney) error {
	profile, err := loadCoinProfile(ctx, h.documentRepo, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	profile.JourneyHistory = append([]db_models.ArchivedJourney{journey}, profile.JourneyHistory...)
	if err := saveCoinProfile(ctx, h.documentRepo, userID, profile); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (h *HistoryService) List(ctx context.Context, userID string) ([]response_models.ArchivedJourneyResponse, error) {
	profile, err := loadCoinProfile(ctx, h.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ArchivedJourneyResponse, 0, len(profile.JourneyHistory))
	for _, journey := range profile.JourneyHistory {
		visited, photos, coins := 0, 0, 0
		for _, p := range journey.Places {
			if p.Visited {
				visited++
			}
			photos += len(p.UserPhotos)
			coins += p.CoinsEarned
		}
		out = append(out, response_models.ArchivedJourneyResponse{
			Journey:     journey,
			Visited:     visited,
			TotalPhotos: photos,
			TotalCoins:  coins,
		})
	}
	return out, nil
}

// Clear empties the archive. The confirmation step lives at the UI
// boundary, not here.
func (h *HistoryService) Clear(ctx context.Context, userID string) error {
	profile, err := loadCoinProfile(ctx, h.documentRepo, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	profile.JourneyHistory = []db_models.ArchivedJourney{}
	if err := saveCoinProfile(ctx, h.documentRepo, userID, profile); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
