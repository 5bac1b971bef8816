package response_models

import "wander/internal/models/db_models"

// RouteResponse carries a built or edited route. Empty distinguishes
// "nothing to route" from a failed build so the client can render an
// empty state instead of a route.
type RouteResponse struct {
	Places          []db_models.TravelPlace `json:"places"`
	Empty           bool                    `json:"empty"`
	TotalDistanceKm float64                 `json:"totalDistanceKm"`
}

type AlternativesResponse struct {
	Affected     db_models.TravelPlace   `json:"affected"`
	Alternatives []db_models.TravelPlace `json:"alternatives"`
}

type TripNarration struct {
	TripName    string `json:"trip_name"`
	Description string `json:"description"`
}
