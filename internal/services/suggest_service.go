package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"wander/internal/models/db_models"
	"wander/internal/models/response_models"
	"wander/pkg/utils"
)

type SuggestServiceInterface interface {
	NarrateTrip(ctx context.Context, route []db_models.TravelPlace, personality, duration string) (*response_models.TripNarration, error)
}

type SuggestService struct {
	narrator utils.NarratorClientInterface
}

func NewSuggestService(narrator utils.NarratorClientInterface) SuggestServiceInterface {
	return &SuggestService{narrator: narrator}
}

// NarrateTrip asks the model for a name and short overview of the
// built route. Purely decorative: a failure here never blocks routing.
func (s *SuggestService) NarrateTrip(ctx context.Context, route []db_models.TravelPlace, personality, duration string) (*response_models.TripNarration, error) {
	if len(route) == 0 {
		return nil, utils.ErrEmptyRoute
	}

	stops := make([]utils.TripStop, 0, len(route))
	for _, p := range route {
		stops = append(stops, utils.TripStop{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			City:        p.City,
		})
	}

	raw, err := s.narrator.NarrateTrip(ctx, stops, personality, duration)
	if err != nil {
		log.Printf("Error narrating trip: %v", err)
		return nil, utils.ErrSuggestFailed
	}

	// Strip markdown fences some models still wrap JSON in.
	raw = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "```json", ""), "```", ""))

	var narration response_models.TripNarration
	if err := json.Unmarshal([]byte(raw), &narration); err != nil {
		log.Printf("Error decoding narration: %v", err)
		return nil, utils.ErrSuggestFailed
	}
	return &narration, nil
}
