package controllers

import (
	"github.com/gin-gonic/gin"
	"wander/internal/services"
	"wander/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

// ListHistory godoc
// @Summary List archived journeys, newest first
// @Tags History
// @Produce json
// @Success 200 {array} response_models.ArchivedJourneyResponse
// @Security BearerAuth
// @Router /history [get]
func (h *HistoryController) ListHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	history, err := h.historyService.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "History fetched successfully")
}

// ClearHistory godoc
// @Summary Delete all archived journeys
// @Description Destructive; the client confirms with the user before calling
// @Tags History
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /history [delete]
func (h *HistoryController) ClearHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.historyService.Clear(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "History cleared")
}
