package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"wander/internal/models/db_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

const (
	PersonalityIntrovert = "introvert mode"

	DurationDayTrip   = "day-trip"
	DurationShortTrip = "short-trip"

	swapAlternativesCap      = 6
	emergencyAlternativesCap = 5
)

// Quiet-preference keyword set for introvert scoring.
var introvertKeywords = []string{"temple", "nature", "park", "sanctuary"}

type ItineraryServiceInterface interface {
	BuildRoute(ctx context.Context, userID, personality, duration, city string) ([]db_models.TravelPlace, error)

	MovePlace(ctx context.Context, userID string, route []db_models.TravelPlace, index int, direction string) ([]db_models.TravelPlace, error)
	RelocatePlace(ctx context.Context, userID string, route []db_models.TravelPlace, from, to int) ([]db_models.TravelPlace, error)
	RemovePlace(ctx context.Context, userID string, route []db_models.TravelPlace, index int) ([]db_models.TravelPlace, error)

	SwapAlternatives(ctx context.Context, userID string, route []db_models.TravelPlace, index int) ([]db_models.TravelPlace, error)
	ApplySwap(ctx context.Context, userID string, route []db_models.TravelPlace, index int, replacement db_models.TravelPlace) ([]db_models.TravelPlace, error)

	EmergencyAlternatives(ctx context.Context, userID string, route []db_models.TravelPlace) ([]db_models.TravelPlace, error)
	ApplyReplace(ctx context.Context, userID string, route []db_models.TravelPlace, replacement db_models.TravelPlace) ([]db_models.TravelPlace, error)

	RouteDistanceKm(route []db_models.TravelPlace) float64
}

type ItineraryService struct {
	documentRepo repositories.DocumentRepository
	shuffler     utils.Shuffler
}

func NewItineraryService(documentRepo repositories.DocumentRepository, shuffler utils.Shuffler) ItineraryServiceInterface {
	return &ItineraryService{
		documentRepo: documentRepo,
		shuffler:     shuffler,
	}
}

// BuildRoute reads the user's liked places, filters them by city, keeps
// the personality/duration-scored candidates and orders them nearest
// neighbor. An empty result is a valid route (nothing liked, or nothing
// in the chosen city), not an error.
func (s *ItineraryService) BuildRoute(ctx context.Context, userID, personality, duration, city string) ([]db_models.TravelPlace, error) {
	liked, err := loadLikedPlaces(ctx, s.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	places := liked
	if city != "" && city != "all" {
		places = make([]db_models.TravelPlace, 0, len(liked))
		for _, p := range liked {
			if p.City == city {
				places = append(places, p)
			}
		}
	}

	candidates := s.selectCandidates(places, personality, duration)
	return orderRoute(candidates), nil
}

// selectCandidates scores and truncates the city-filtered set.
// When truncation applies, the top 2x cap candidates are shuffled and
// cut to the cap, which keeps regeneration varied while still biased
// toward higher scores.
func (s *ItineraryService) selectCandidates(places []db_models.TravelPlace, personality, duration string) []db_models.TravelPlace {
	if len(places) == 0 {
		return []db_models.TravelPlace{}
	}

	scored := make([]db_models.TravelPlace, len(places))
	copy(scored, places)

	if personality == PersonalityIntrovert {
		sort.SliceStable(scored, func(i, j int) bool {
			return introvertScore(scored[i]) > introvertScore(scored[j])
		})
	} else {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Rating > scored[j].Rating
		})
	}

	max := maxStops(duration)
	if max == 0 || len(scored) <= max {
		return scored
	}

	top := 2 * max
	if top > len(scored) {
		top = len(scored)
	}
	pool := scored[:top]
	s.shuffler.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:max]
}

func introvertScore(p db_models.TravelPlace) int {
	name := strings.ToLower(p.Name)
	desc := strings.ToLower(p.Description)
	for _, kw := range introvertKeywords {
		if strings.Contains(name, kw) || strings.Contains(desc, kw) {
			return 1
		}
	}
	return 0
}

// maxStops returns the duration-derived cap, 0 meaning unlimited.
func maxStops(duration string) int {
	switch duration {
	case DurationDayTrip:
		return 3
	case DurationShortTrip:
		return 6
	default:
		return 0
	}
}

// orderRoute sequences candidates greedy nearest-neighbor from the
// first candidate. O(n^2), no backtracking; the output is always a
// permutation of the input.
func orderRoute(places []db_models.TravelPlace) []db_models.TravelPlace {
	if len(places) <= 1 {
		return places
	}

	unordered := make([]db_models.TravelPlace, len(places))
	copy(unordered, places)

	ordered := make([]db_models.TravelPlace, 0, len(places))
	current := unordered[0]
	unordered = unordered[1:]
	ordered = append(ordered, current)

	for len(unordered) > 0 {
		nearest := 0
		shortest := utils.DistanceKm(current.Lat, current.Long, unordered[0].Lat, unordered[0].Long)
		for i := 1; i < len(unordered); i++ {
			d := utils.DistanceKm(current.Lat, current.Long, unordered[i].Lat, unordered[i].Long)
			if d < shortest {
				shortest = d
				nearest = i
			}
		}
		current = unordered[nearest]
		unordered = append(unordered[:nearest], unordered[nearest+1:]...)
		ordered = append(ordered, current)
	}
	return ordered
}

func (s *ItineraryService) RouteDistanceKm(route []db_models.TravelPlace) float64 {
	var total float64
	for i := 0; i+1 < len(route); i++ {
		total += utils.DistanceKm(route[i].Lat, route[i].Long, route[i+1].Lat, route[i+1].Long)
	}
	return total
}

func (s *ItineraryService) MovePlace(ctx context.Context, userID string, route []db_models.TravelPlace, index int, direction string) ([]db_models.TravelPlace, error) {
	if index < 0 || index >= len(route) {
		return nil, utils.ErrInvalidIndex
	}
	// Moving past either end is a no-op, matching drag handles in the UI.
	if direction == "up" && index == 0 {
		return route, nil
	}
	if direction == "down" && index == len(route)-1 {
		return route, nil
	}

	next := index + 1
	if direction == "up" {
		next = index - 1
	}
	edited := cloneRoute(route)
	edited[index], edited[next] = edited[next], edited[index]

	s.syncActiveJourney(ctx, userID, edited)
	return edited, nil
}

func (s *ItineraryService) RelocatePlace(ctx context.Context, userID string, route []db_models.TravelPlace, from, to int) ([]db_models.TravelPlace, error) {
	if from < 0 || from >= len(route) || to < 0 || to >= len(route) {
		return nil, utils.ErrInvalidIndex
	}
	if from == to {
		return route, nil
	}

	edited := cloneRoute(route)
	moved := edited[from]
	edited = append(edited[:from], edited[from+1:]...)
	edited = append(edited[:to], append([]db_models.TravelPlace{moved}, edited[to:]...)...)

	s.syncActiveJourney(ctx, userID, edited)
	return edited, nil
}

func (s *ItineraryService) RemovePlace(ctx context.Context, userID string, route []db_models.TravelPlace, index int) ([]db_models.TravelPlace, error) {
	if index < 0 || index >= len(route) {
		return nil, utils.ErrInvalidIndex
	}
	if len(route) <= 1 {
		return nil, utils.ErrRouteMinLength
	}

	edited := cloneRoute(route)
	edited = append(edited[:index], edited[index+1:]...)

	s.syncActiveJourney(ctx, userID, edited)
	return edited, nil
}

// SwapAlternatives lists replacement candidates for the place at index:
// liked places from the same city not already routed, best rated first.
// A place without a city has no swap pool.
func (s *ItineraryService) SwapAlternatives(ctx context.Context, userID string, route []db_models.TravelPlace, index int) ([]db_models.TravelPlace, error) {
	if index < 0 || index >= len(route) {
		return nil, utils.ErrInvalidIndex
	}
	affected := route[index]
	if affected.City == "" {
		return []db_models.TravelPlace{}, nil
	}

	liked, err := loadLikedPlaces(ctx, s.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	routeIDs := routeIDSet(route)
	candidates := make([]db_models.TravelPlace, 0, len(liked))
	for _, p := range liked {
		if p.ID == affected.ID || routeIDs[p.ID] {
			continue
		}
		if p.City != affected.City {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})
	if len(candidates) > swapAlternativesCap {
		candidates = candidates[:swapAlternativesCap]
	}
	return candidates, nil
}

func (s *ItineraryService) ApplySwap(ctx context.Context, userID string, route []db_models.TravelPlace, index int, replacement db_models.TravelPlace) ([]db_models.TravelPlace, error) {
	if index < 0 || index >= len(route) {
		return nil, utils.ErrInvalidIndex
	}

	edited := cloneRoute(route)
	edited[index] = replacement

	s.syncActiveJourney(ctx, userID, edited)
	return edited, nil
}

// EmergencyAlternatives models "the next stop is unexpectedly
// unavailable": the affected place is always route[0]. Candidates come
// from the liked pool minus the route; when that is empty the rest of
// the route itself serves as fallback. Shuffled, capped at 5.
func (s *ItineraryService) EmergencyAlternatives(ctx context.Context, userID string, route []db_models.TravelPlace) ([]db_models.TravelPlace, error) {
	if len(route) == 0 {
		return nil, utils.ErrEmptyRoute
	}
	affected := route[0]

	liked, err := loadLikedPlaces(ctx, s.documentRepo, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	routeIDs := routeIDSet(route)
	candidates := make([]db_models.TravelPlace, 0, len(liked))
	for _, p := range liked {
		if p.ID == affected.ID || routeIDs[p.ID] {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		for _, p := range route[1:] {
			candidates = append(candidates, p)
		}
	}

	s.shuffler.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > emergencyAlternativesCap {
		candidates = candidates[:emergencyAlternativesCap]
	}
	return candidates, nil
}

func (s *ItineraryService) ApplyReplace(ctx context.Context, userID string, route []db_models.TravelPlace, replacement db_models.TravelPlace) ([]db_models.TravelPlace, error) {
	if len(route) == 0 {
		return nil, utils.ErrEmptyRoute
	}

	edited := cloneRoute(route)
	edited[0] = replacement

	s.syncActiveJourney(ctx, userID, edited)
	return edited, nil
}

// syncActiveJourney pushes an edited route into the stored active
// journey, if one exists, preserving per-place visit state by id and
// clamping the current index. Persistence failure here must not undo
// the edit the user already sees, so it is logged and swallowed.
func (s *ItineraryService) syncActiveJourney(ctx context.Context, userID string, route []db_models.TravelPlace) {
	journey, err := loadActiveJourney(ctx, s.documentRepo, userID)
	if err != nil {
		log.Printf("sync journey for user %s: load failed: %v", userID, err)
		return
	}
	if journey == nil {
		return
	}

	previous := make(map[string]db_models.JourneyPlace, len(journey.Places))
	for _, jp := range journey.Places {
		previous[jp.ID] = jp
	}

	places := make([]db_models.JourneyPlace, 0, len(route))
	for _, p := range route {
		if jp, ok := previous[p.ID]; ok {
			places = append(places, jp)
			continue
		}
		places = append(places, p.ToJourneyPlace())
	}
	journey.Places = places

	if journey.CurrentPlaceIndex >= len(places) {
		journey.CurrentPlaceIndex = len(places) - 1
	}

	if err := saveActiveJourney(ctx, s.documentRepo, userID, journey); err != nil {
		log.Printf("sync journey for user %s: save failed: %v", userID, err)
	}
}

func cloneRoute(route []db_models.TravelPlace) []db_models.TravelPlace {
	edited := make([]db_models.TravelPlace, len(route))
	copy(edited, route)
	return edited
}

func routeIDSet(route []db_models.TravelPlace) map[string]bool {
	ids := make(map[string]bool, len(route))
	for _, p := range route {
		ids[p.ID] = true
	}
	return ids
}
