package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// StartJourney godoc
// @Summary Start a journey from an ordered route
// @Description Rejected when a journey is already active; abandon it first
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.StartJourneyRequest true "Route, personality, duration, city"
// @Success 200 {object} db_models.ActiveJourney
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/start [post]
func (j *JourneyController) StartJourney(c *gin.Context) {
	var req request_models.StartJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Route is required")
		return
	}

	userID := c.GetString("user_id")
	journey, err := j.journeyService.Start(c.Request.Context(), userID, req.Route, req.Personality, req.Duration, req.City)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey started successfully")
}

// GetActiveJourney godoc
// @Summary Get the active journey
// @Tags Journey
// @Produce json
// @Success 200 {object} db_models.ActiveJourney
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/active [get]
func (j *JourneyController) GetActiveJourney(c *gin.Context) {
	userID := c.GetString("user_id")

	journey, err := j.journeyService.Active(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Active journey fetched successfully")
}

// CheckIn godoc
// @Summary Check in at a place with photo evidence
// @Description At least one photo required; 10 coins per photo, max 3 photos. Completing the journey awards a 100 coin bonus once.
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.CheckInRequest true "Place ID and photos"
// @Success 200 {object} response_models.CheckInResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/checkin [post]
func (j *JourneyController) CheckIn(c *gin.Context) {
	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	userID := c.GetString("user_id")
	result, err := j.journeyService.CheckIn(c.Request.Context(), userID, req.PlaceID, req.Photos)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Checked in successfully")
}

// Navigate godoc
// @Summary Set the current stop for browsing
// @Description Never changes visit state or coins
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.NavigateRequest true "Target index"
// @Success 200 {object} db_models.ActiveJourney
// @Security BearerAuth
// @Router /journeys/navigate [post]
func (j *JourneyController) Navigate(c *gin.Context) {
	var req request_models.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		utils.RespondError(c, http.StatusBadRequest, "Index is required")
		return
	}

	userID := c.GetString("user_id")
	journey, err := j.journeyService.Navigate(c.Request.Context(), userID, *req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Navigated successfully")
}

// AbandonJourney godoc
// @Summary End the journey early
// @Description Archives partial progress, no completion bonus
// @Tags Journey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/abandon [post]
func (j *JourneyController) AbandonJourney(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := j.journeyService.Abandon(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journey abandoned")
}

// FinishJourney godoc
// @Summary Archive a completed journey
// @Tags Journey
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/finish [post]
func (j *JourneyController) FinishJourney(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := j.journeyService.Finish(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journey finished")
}

// GetProgress godoc
// @Summary Get visited/total progress for the active journey
// @Tags Journey
// @Produce json
// @Success 200 {object} response_models.JourneyProgress
// @Security BearerAuth
// @Router /journeys/progress [get]
func (j *JourneyController) GetProgress(c *gin.Context) {
	userID := c.GetString("user_id")

	progress, err := j.journeyService.Progress(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress fetched successfully")
}
