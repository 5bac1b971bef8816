package response_models

import "wander/internal/models/db_models"

type JourneyProgress struct {
	Visited    int `json:"visited"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// TripSummary is surfaced once, when the last place is checked in.
// TotalCoins includes the completion bonus.
type TripSummary struct {
	PlacesVisited int `json:"placesVisited"`
	TotalPhotos   int `json:"totalPhotos"`
	TotalCoins    int `json:"totalCoins"`
}

type CheckInResponse struct {
	Journey     *db_models.ActiveJourney `json:"journey"`
	CoinsEarned int                      `json:"coinsEarned"`
	Completed   bool                     `json:"completed"`
	Summary     *TripSummary             `json:"summary,omitempty"`
}
