package request_models

import "wander/internal/models/db_models"

type StartJourneyRequest struct {
	Route       []db_models.TravelPlace `json:"route" binding:"required"`
	Personality string                  `json:"personality"`
	Duration    string                  `json:"duration"`
	City        string                  `json:"city"`
}

type CheckInRequest struct {
	PlaceID string   `json:"place_id" binding:"required"`
	Photos  []string `json:"photos"`
}

type NavigateRequest struct {
	Index *int `json:"index" binding:"required"`
}
