package services

import (
	"context"
	"github.com/google/uuid"
	"log"
	"wander/internal/models/db_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/events"
	"wander/pkg/utils"
)

const (
	photoCoins      = 10
	completionBonus = 100
	maxPhotos       = 3
)

type JourneyServiceInterface interface {
	Start(ctx context.Context, userID string, route []db_models.TravelPlace, personality, duration, city string) (*db_models.ActiveJourney, error)
	Active(ctx context.Context, userID string) (*db_models.ActiveJourney, error)
	CheckIn(ctx context.Context, userID, placeID string, photos []string) (*response_models.CheckInResponse, error)
	Navigate(ctx context.Context, userID string, index int) (*db_models.ActiveJourney, error)
	Abandon(ctx context.Context, userID string) error
	Finish(ctx context.Context, userID string) error
	Progress(ctx context.Context, userID string) (response_models.JourneyProgress, error)
}

type JourneyService struct {
	documentRepo repositories.DocumentRepository
	coinService  CoinServiceInterface
	history      HistoryServiceInterface
	bus          events.CoinBus
}

func NewJourneyService(
	documentRepo repositories.DocumentRepository,
	coinService CoinServiceInterface,
	history HistoryServiceInterface,
	bus events.CoinBus,
) JourneyServiceInterface {
	return &JourneyService{
		documentRepo: documentRepo,
		coinService:  coinService,
		history:      history,
		bus:          bus,
	}
}

// Start converts an ordered route into the active journey. Starting
// while another journey is active is rejected; the caller must abandon
// the old one first, so progress is never silently discarded.
func (j *JourneyService) Start(ctx context.Context, userID string, route []db_models.TravelPlace, personality, duration, city string) (*db_models.ActiveJourney, error) {
	if len(route) == 0 {
		return nil, utils.ErrEmptyRoute
	}

	existing, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrJourneyActive
	}

	places := make([]db_models.JourneyPlace, 0, len(route))
	for _, p := range route {
		places = append(places, p.ToJourneyPlace())
	}

	journey := &db_models.ActiveJourney{
		ID:                uuid.New().String(),
		Personality:       personality,
		Duration:          duration,
		City:              city,
		Places:            places,
		StartDate:         utils.NowRFC3339TH(),
		IsActive:          true,
		CurrentPlaceIndex: 0,
	}

	if err := saveActiveJourney(ctx, j.documentRepo, userID, journey); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return journey, nil
}

func (j *JourneyService) Active(ctx context.Context, userID string) (*db_models.ActiveJourney, error) {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrNoActiveJourney
	}
	return journey, nil
}

// CheckIn confirms a visit with photo evidence. No photos, no credit.
// Coins are 10 per photo, capped at 3 photos, extras dropped. When the
// checked-in place is the current stop the index auto-advances to the
// next unvisited place, searching forward only. The check-in that
// leaves no place unvisited also awards the one-time completion bonus.
func (j *JourneyService) CheckIn(ctx context.Context, userID, placeID string, photos []string) (*response_models.CheckInResponse, error) {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrNoActiveJourney
	}

	placeIndex := -1
	for i := range journey.Places {
		if journey.Places[i].ID == placeID {
			placeIndex = i
			break
		}
	}
	if placeIndex == -1 {
		return nil, utils.ErrPlaceNotFound
	}
	if journey.Places[placeIndex].Visited {
		return nil, utils.ErrAlreadyVisited
	}
	if len(photos) == 0 {
		return nil, utils.ErrPhotoRequired
	}
	if len(photos) > maxPhotos {
		photos = photos[:maxPhotos]
	}

	coins := photoCoins * len(photos)
	place := &journey.Places[placeIndex]
	place.Visited = true
	place.VisitDate = utils.NowRFC3339TH()
	place.UserPhotos = photos
	place.CoinsEarned = coins

	if placeIndex == journey.CurrentPlaceIndex {
		for i := placeIndex + 1; i < len(journey.Places); i++ {
			if !journey.Places[i].Visited {
				journey.CurrentPlaceIndex = i
				break
			}
		}
	}

	completed := true
	for _, p := range journey.Places {
		if !p.Visited {
			completed = false
			break
		}
	}

	// The visit is authoritative once computed; a storage hiccup must
	// not take the user's check-in away. Log and keep going.
	if err := saveActiveJourney(ctx, j.documentRepo, userID, journey); err != nil {
		log.Printf("check-in for user %s: journey save failed: %v", userID, err)
	}

	if _, err := j.coinService.Earn(ctx, userID, coins); err != nil {
		log.Printf("check-in for user %s: coin credit failed: %v", userID, err)
	}
	j.bus.Publish(events.CoinEvent{Amount: coins})

	resp := &response_models.CheckInResponse{
		Journey:     journey,
		CoinsEarned: coins,
		Completed:   completed,
	}

	if completed {
		if _, err := j.coinService.Earn(ctx, userID, completionBonus); err != nil {
			log.Printf("check-in for user %s: bonus credit failed: %v", userID, err)
		}
		j.bus.Publish(events.CoinEvent{Amount: completionBonus})

		totalCoins := completionBonus
		totalPhotos := 0
		for _, p := range journey.Places {
			totalCoins += p.CoinsEarned
			totalPhotos += len(p.UserPhotos)
		}
		resp.Summary = &response_models.TripSummary{
			PlacesVisited: len(journey.Places),
			TotalPhotos:   totalPhotos,
			TotalCoins:    totalCoins,
		}
	}

	return resp, nil
}

// Navigate sets the current stop for browsing. It never touches visit
// state or coins.
func (j *JourneyService) Navigate(ctx context.Context, userID string, index int) (*db_models.ActiveJourney, error) {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrNoActiveJourney
	}
	if index < 0 || index >= len(journey.Places) {
		return nil, utils.ErrInvalidIndex
	}

	journey.CurrentPlaceIndex = index
	if err := saveActiveJourney(ctx, j.documentRepo, userID, journey); err != nil {
		log.Printf("navigate for user %s: journey save failed: %v", userID, err)
	}
	return journey, nil
}

// Abandon archives the journey as-is, partial progress included.
// No completion bonus.
func (j *JourneyService) Abandon(ctx context.Context, userID string) error {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if journey == nil {
		return utils.ErrNoActiveJourney
	}

	return j.archiveAndClear(ctx, userID, journey, false)
}

// Finish archives a fully visited journey. The bonus was already
// credited by the completing check-in.
func (j *JourneyService) Finish(ctx context.Context, userID string) error {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if journey == nil {
		return utils.ErrNoActiveJourney
	}
	for _, p := range journey.Places {
		if !p.Visited {
			return utils.ErrJourneyNotDone
		}
	}

	return j.archiveAndClear(ctx, userID, journey, true)
}

func (j *JourneyService) archiveAndClear(ctx context.Context, userID string, journey *db_models.ActiveJourney, completed bool) error {
	archived := db_models.ArchivedJourney{
		ID:                journey.ID,
		Personality:       journey.Personality,
		Duration:          journey.Duration,
		City:              journey.City,
		Places:            journey.Places,
		StartDate:         journey.StartDate,
		EndDate:           utils.NowRFC3339TH(),
		Completed:         completed,
		CurrentPlaceIndex: journey.CurrentPlaceIndex,
	}

	if err := j.history.Archive(ctx, userID, archived); err != nil {
		return err
	}
	if err := j.documentRepo.Delete(ctx, userID, db_models.DocActiveJourney); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (j *JourneyService) Progress(ctx context.Context, userID string) (response_models.JourneyProgress, error) {
	journey, err := loadActiveJourney(ctx, j.documentRepo, userID)
	if err != nil {
		return response_models.JourneyProgress{}, utils.ErrDatabaseError
	}
	if journey == nil {
		return response_models.JourneyProgress{}, utils.ErrNoActiveJourney
	}

	visited := 0
	for _, p := range journey.Places {
		if p.Visited {
			visited++
		}
	}
	total := len(journey.Places)
	percentage := 0
	if total > 0 {
		percentage = int(float64(visited)/float64(total)*100 + 0.5)
	}
	return response_models.JourneyProgress{
		Visited:    visited,
		Total:      total,
		Percentage: percentage,
	}, nil
}
