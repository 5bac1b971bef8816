package services

import (
	"context"
	"wander/internal/models/db_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type CoinServiceInterface interface {
	Profile(ctx context.Context, userID string) (*db_models.CoinProfile, error)
	Earn(ctx context.Context, userID string, amount int) (int, error)
	Spend(ctx context.Context, userID string, amount int) (int, error)
}

type CoinService struct {
	documentRepo repositories.DocumentRepository
}

func NewCoinService(documentRepo repositories.DocumentRepository) CoinServiceInterface {
	return &CoinService{documentRepo: documentRepo}
}

func (c *CoinService) Profile(ctx context.Context, userID string) (*db_models.CoinProfile, error) {
	profile, err := loadCoinProfile(ctx, c.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profile, nil
}

// Earn credits the balance. Earns are additive only; the balance never
// moves down here.
func (c *CoinService) Earn(ctx context.Context, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, utils.ErrInvalidAmount
	}

	profile, err := loadCoinProfile(ctx, c.documentRepo, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	profile.TotalCoins += amount
	if err := saveCoinProfile(ctx, c.documentRepo, userID, profile); err != nil {
		return 0, utils.ErrDatabaseError
	}
	return profile.TotalCoins, nil
}

// Spend debits the balance only when it covers the amount; otherwise
// nothing changes and the caller gets an explicit refusal. A negative
// balance is never observable.
func (c *CoinService) Spend(ctx context.Context, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, utils.ErrInvalidAmount
	}

	profile, err := loadCoinProfile(ctx, c.documentRepo, userID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if profile.TotalCoins < amount {
		return profile.TotalCoins, utils.ErrInsufficientCoins
	}

	profile.TotalCoins -= amount
	if err := saveCoinProfile(ctx, c.documentRepo, userID, profile); err != nil {
		return 0, utils.ErrDatabaseError
	}
	return profile.TotalCoins, nil
}
