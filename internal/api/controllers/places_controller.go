package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"wander/internal/services"
	"wander/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// ListPlaces godoc
// @Summary List catalog places
// @Description Fetch a paginated list of places, optionally restricted to one city
// @Tags Places
// @Produce json
// @Param city query string false "City name or 'all'"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.Place
// @Security BearerAuth
// @Router /places [get]
func (p *PlacesController) ListPlaces(c *gin.Context) {
	page, pageSize, ok := paging(c)
	if !ok {
		return
	}

	name := c.Query("name")
	city := c.DefaultQuery("city", "all")

	var err error
	var places interface{}
	if name != "" {
		places, err = p.placeService.SearchPlaces(c.Request.Context(), name, city, page, pageSize)
	} else {
		places, err = p.placeService.ListPlaces(c.Request.Context(), city, page, pageSize)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// GetPlaceById godoc
// @Summary Get a place by ID
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} response_models.Place
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places/{id} [get]
func (p *PlacesController) GetPlaceById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placeService.GetPlaceByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// GetSimilarPlaces godoc
// @Summary List places similar to a given place
// @Description Embedding-based cosine similarity over the place catalog
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {array} response_models.SimilarPlace
// @Security BearerAuth
// @Router /places/{id}/similar [get]
func (p *PlacesController) GetSimilarPlaces(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	places, err := p.placeService.SimilarPlaces(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Similar places fetched successfully")
}

// GetLikedPlaces godoc
// @Summary Get the authenticated user's liked places
// @Tags Places
// @Produce json
// @Success 200 {array} db_models.TravelPlace
// @Security BearerAuth
// @Router /places/liked [get]
func (p *PlacesController) GetLikedPlaces(c *gin.Context) {
	userID := c.GetString("user_id")

	liked, err := p.placeService.LikedPlaces(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, liked, "Liked places fetched successfully")
}

func paging(c *gin.Context) (page, pageSize int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
