package response_models

type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Lat         float64  `json:"lat"`
	Long        float64  `json:"long"`
	Rating      float64  `json:"rating,omitempty"`
	Image       string   `json:"image,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type SimilarPlace struct {
	Place
	Similarity float64 `json:"similarity"`
}
