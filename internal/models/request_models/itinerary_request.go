package request_models

import "wander/internal/models/db_models"

type BuildRouteRequest struct {
	Personality string `json:"personality"`
	Duration    string `json:"duration"`
	// City is a specific city name, or "all" for every liked place.
	City string `json:"city"`
}

type MovePlaceRequest struct {
	Route     []db_models.TravelPlace `json:"route" binding:"required"`
	Index     int                     `json:"index"`
	Direction string                  `json:"direction" binding:"required,oneof=up down"`
}

type RelocatePlaceRequest struct {
	Route []db_models.TravelPlace `json:"route" binding:"required"`
	From  int                     `json:"from"`
	To    int                     `json:"to"`
}

type RemovePlaceRequest struct {
	Route []db_models.TravelPlace `json:"route" binding:"required"`
	Index int                     `json:"index"`
}

type SwapAlternativesRequest struct {
	Route []db_models.TravelPlace `json:"route" binding:"required"`
	Index int                     `json:"index"`
}

type ApplySwapRequest struct {
	Route       []db_models.TravelPlace `json:"route" binding:"required"`
	Index       int                     `json:"index"`
	Replacement db_models.TravelPlace   `json:"replacement" binding:"required"`
}

type EmergencyAlternativesRequest struct {
	Route []db_models.TravelPlace `json:"route" binding:"required"`
}

type ApplyReplaceRequest struct {
	Route       []db_models.TravelPlace `json:"route" binding:"required"`
	Replacement db_models.TravelPlace   `json:"replacement" binding:"required"`
}

type NarrateTripRequest struct {
	Route       []db_models.TravelPlace `json:"route" binding:"required"`
	Personality string                  `json:"personality"`
	Duration    string                  `json:"duration"`
}
