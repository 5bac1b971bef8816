package response_models

type CoinBalance struct {
	TotalCoins int `json:"totalCoins"`
}
