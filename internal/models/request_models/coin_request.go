package request_models

type SpendCoinsRequest struct {
	Amount   int    `json:"amount" binding:"required,gt=0"`
	RewardID string `json:"reward_id"`
}
