package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	suggestService   services.SuggestServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	suggestService services.SuggestServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		suggestService:   suggestService,
	}
}

// BuildRoute godoc
// @Summary Build a route from the user's liked places
// @Description Filters liked places by city, scores by personality, caps by duration and orders nearest-neighbor
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.BuildRouteRequest true "Personality, duration, city"
// @Success 200 {object} response_models.RouteResponse
// @Security BearerAuth
// @Router /itinerary/build [post]
func (i *ItineraryController) BuildRoute(c *gin.Context) {
	var req request_models.BuildRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.BuildRoute(c.Request.Context(), userID, req.Personality, req.Duration, req.City)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Route built successfully")
}

// MovePlace godoc
// @Summary Move a route entry one position up or down
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.MovePlaceRequest true "Route, index, direction"
// @Success 200 {object} response_models.RouteResponse
// @Security BearerAuth
// @Router /itinerary/move [post]
func (i *ItineraryController) MovePlace(c *gin.Context) {
	var req request_models.MovePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route and direction (up/down) are required")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.MovePlace(c.Request.Context(), userID, req.Route, req.Index, req.Direction)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Place moved successfully")
}

// RelocatePlace godoc
// @Summary Drag a route entry to an arbitrary position
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.RelocatePlaceRequest true "Route, from, to"
// @Success 200 {object} response_models.RouteResponse
// @Security BearerAuth
// @Router /itinerary/relocate [post]
func (i *ItineraryController) RelocatePlace(c *gin.Context) {
	var req request_models.RelocatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route, from and to are required")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.RelocatePlace(c.Request.Context(), userID, req.Route, req.From, req.To)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Place relocated successfully")
}

// RemovePlace godoc
// @Summary Remove a route entry
// @Description Refused when the route would become empty
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.RemovePlaceRequest true "Route, index"
// @Success 200 {object} response_models.RouteResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/remove [post]
func (i *ItineraryController) RemovePlace(c *gin.Context) {
	var req request_models.RemovePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route and index are required")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.RemovePlace(c.Request.Context(), userID, req.Route, req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Place removed successfully")
}

// SwapAlternatives godoc
// @Summary List swap candidates for a route entry
// @Description Same-city liked places not already routed, best rated first
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SwapAlternativesRequest true "Route, index"
// @Success 200 {object} response_models.AlternativesResponse
// @Security BearerAuth
// @Router /itinerary/swap/alternatives [post]
func (i *ItineraryController) SwapAlternatives(c *gin.Context) {
	var req request_models.SwapAlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route and index are required")
		return
	}

	userID := c.GetString("user_id")
	alternatives, err := i.itineraryService.SwapAlternatives(c.Request.Context(), userID, req.Route, req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AlternativesResponse{
		Affected:     req.Route[req.Index],
		Alternatives: alternatives,
	}, "Swap alternatives fetched successfully")
}

// ApplySwap godoc
// @Summary Replace one route entry with a chosen alternative
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ApplySwapRequest true "Route, index, replacement"
// @Success 200 {object} response_models.RouteResponse
// @Security BearerAuth
// @Router /itinerary/swap [post]
func (i *ItineraryController) ApplySwap(c *gin.Context) {
	var req request_models.ApplySwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route, index and replacement are required")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.ApplySwap(c.Request.Context(), userID, req.Route, req.Index, req.Replacement)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Place swapped successfully")
}

// EmergencyAlternatives godoc
// @Summary List replacements when the next stop is unavailable
// @Description Affected place is always the first in the route; candidates are shuffled, capped at 5
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.EmergencyAlternativesRequest true "Route"
// @Success 200 {object} response_models.AlternativesResponse
// @Security BearerAuth
// @Router /itinerary/emergency/alternatives [post]
func (i *ItineraryController) EmergencyAlternatives(c *gin.Context) {
	var req request_models.EmergencyAlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route is required")
		return
	}

	userID := c.GetString("user_id")
	alternatives, err := i.itineraryService.EmergencyAlternatives(c.Request.Context(), userID, req.Route)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AlternativesResponse{
		Affected:     req.Route[0],
		Alternatives: alternatives,
	}, "Emergency alternatives fetched successfully")
}

// ApplyReplace godoc
// @Summary Replace the first route entry with a chosen alternative
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.ApplyReplaceRequest true "Route, replacement"
// @Success 200 {object} response_models.RouteResponse
// @Security BearerAuth
// @Router /itinerary/emergency [post]
func (i *ItineraryController) ApplyReplace(c *gin.Context) {
	var req request_models.ApplyReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route and replacement are required")
		return
	}

	userID := c.GetString("user_id")
	route, err := i.itineraryService.ApplyReplace(c.Request.Context(), userID, req.Route, req.Replacement)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	i.respondRoute(c, route, "Place replaced successfully")
}

// NarrateTrip godoc
// @Summary Generate a trip name and description for a route
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.NarrateTripRequest true "Route, personality, duration"
// @Success 200 {object} response_models.TripNarration
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/narrate [post]
func (i *ItineraryController) NarrateTrip(c *gin.Context) {
	var req request_models.NarrateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route is required")
		return
	}

	narration, err := i.suggestService.NarrateTrip(c.Request.Context(), req.Route, req.Personality, req.Duration)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, narration, "Trip narrated successfully")
}

func (i *ItineraryController) respondRoute(c *gin.Context, route []db_models.TravelPlace, message string) {
	utils.RespondSuccess(c, response_models.RouteResponse{
		Places:          route,
		Empty:           len(route) == 0,
		TotalDistanceKm: i.itineraryService.RouteDistanceKm(route),
	}, message)
}
