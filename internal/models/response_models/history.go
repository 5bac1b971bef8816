package response_models

import "wander/internal/models/db_models"

// ArchivedJourneyResponse is a history entry plus its derived rollup.
type ArchivedJourneyResponse struct {
	Journey     db_models.ArchivedJourney `json:"journey"`
	Visited     int                       `json:"visited"`
	TotalPhotos int                       `json:"totalPhotos"`
	TotalCoins  int                       `json:"totalCoins"`
}
