package controllers

import (
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/services"
	"wander/pkg/events"
	"wander/pkg/utils"
)

type CoinsController struct {
	coinService services.CoinServiceInterface
	bus         events.CoinBus
}

func NewCoinsController(coinService services.CoinServiceInterface, bus events.CoinBus) *CoinsController {
	return &CoinsController{
		coinService: coinService,
		bus:         bus,
	}
}

// GetBalance godoc
// @Summary Get the user's coin balance
// @Tags Coins
// @Produce json
// @Success 200 {object} response_models.CoinBalance
// @Security BearerAuth
// @Router /coins [get]
func (co *CoinsController) GetBalance(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := co.coinService.Profile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CoinBalance{TotalCoins: profile.TotalCoins}, "Balance fetched successfully")
}

// SpendCoins godoc
// @Summary Spend coins on a reward
// @Description Fails without mutation when the balance does not cover the amount
// @Tags Coins
// @Accept json
// @Produce json
// @Param request body request_models.SpendCoinsRequest true "Amount and reward ID"
// @Success 200 {object} response_models.CoinBalance
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /coins/spend [post]
func (co *CoinsController) SpendCoins(c *gin.Context) {
	var req request_models.SpendCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Amount is required and must be positive")
		return
	}

	userID := c.GetString("user_id")
	balance, err := co.coinService.Spend(c.Request.Context(), userID, req.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CoinBalance{TotalCoins: balance}, "Coins spent successfully")
}

// StreamCoinEvents godoc
// @Summary Stream coin-earned events as SSE
// @Description Emits one event per ledger credit (check-ins and completion bonus)
// @Tags Coins
// @Produce text/event-stream
// @Security BearerAuth
// @Router /coins/events [get]
func (co *CoinsController) StreamCoinEvents(c *gin.Context) {
	ch, cancel := co.bus.Subscribe()
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("coinUpdate", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
