package services

import (
	"context"
	"encoding/json"
	"wander/internal/models/db_models"
	"wander/internal/repositories"
)

// Typed accessors over the per-user document store. Reads of absent
// documents return the zero value, never an error, so profiles and
// liked lists materialize lazily.

func loadLikedPlaces(ctx context.Context, repo repositories.DocumentRepository, userID string) ([]db_models.TravelPlace, error) {
	raw, err := repo.Get(ctx, userID, db_models.DocLikedPlaces)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []db_models.TravelPlace{}, nil
	}
	var places []db_models.TravelPlace
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func loadActiveJourney(ctx context.Context, repo repositories.DocumentRepository, userID string) (*db_models.ActiveJourney, error) {
	raw, err := repo.Get(ctx, userID, db_models.DocActiveJourney)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var journey db_models.ActiveJourney
	if err := json.Unmarshal(raw, &journey); err != nil {
		return nil, err
	}
	return &journey, nil
}

func saveActiveJourney(ctx context.Context, repo repositories.DocumentRepository, userID string, journey *db_models.ActiveJourney) error {
	raw, err := json.Marshal(journey)
	if err != nil {
		return err
	}
	return repo.Put(ctx, userID, db_models.DocActiveJourney, raw)
}

func loadCoinProfile(ctx context.Context, repo repositories.DocumentRepository, userID string) (*db_models.CoinProfile, error) {
	raw, err := repo.Get(ctx, userID, db_models.DocCoinProfile)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &db_models.CoinProfile{
			TotalCoins:     0,
			JourneyHistory: []db_models.ArchivedJourney{},
		}, nil
	}
	var profile db_models.CoinProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	if profile.JourneyHistory == nil {
		profile.JourneyHistory = []db_models.ArchivedJourney{}
	}
	return &profile, nil
}

func saveCoinProfile(ctx context.Context, repo repositories.DocumentRepository, userID string, profile *db_models.CoinProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return repo.Put(ctx, userID, db_models.DocCoinProfile, raw)
}
