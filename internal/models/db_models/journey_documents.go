package db_models

// JSON document schemas for the per-user store. Field names are part of
// the wire contract shared with the client and must not change.

// TravelPlace is one entry of the liked_places document.
type TravelPlace struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Lat         float64  `json:"lat"`
	Long        float64  `json:"long"`
	Rating      float64  `json:"rating,omitempty"`
	Image       string   `json:"image,omitempty"`
	City        string   `json:"city,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// JourneyPlace is a TravelPlace frozen into an active journey, plus
// its visit state. coinsEarned is 10 x photo count at check-in time.
type JourneyPlace struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Lat         float64  `json:"lat"`
	Long        float64  `json:"long"`
	Rating      float64  `json:"rating,omitempty"`
	Image       string   `json:"image,omitempty"`
	City        string   `json:"city,omitempty"`
	Visited     bool     `json:"visited"`
	VisitDate   string   `json:"visitDate,omitempty"`
	UserPhotos  []string `json:"userPhotos"`
	CoinsEarned int      `json:"coinsEarned"`
}

// ActiveJourney is the active_journey document. At most one exists per
// user; places is never empty while the journey is active.
type ActiveJourney struct {
	ID                string         `json:"id"`
	Personality       string         `json:"personality"`
	Duration          string         `json:"duration"`
	City              string         `json:"city"`
	Places            []JourneyPlace `json:"places"`
	StartDate         string         `json:"startDate"`
	IsActive          bool           `json:"isActive"`
	CurrentPlaceIndex int            `json:"currentPlaceIndex"`
}

// ArchivedJourney is an immutable snapshot appended to journeyHistory
// when a journey finishes or is abandoned.
type ArchivedJourney struct {
	ID                string         `json:"id"`
	Personality       string         `json:"personality"`
	Duration          string         `json:"duration"`
	City              string         `json:"city"`
	Places            []JourneyPlace `json:"places"`
	StartDate         string         `json:"startDate"`
	EndDate           string         `json:"endDate"`
	Completed         bool           `json:"completed"`
	CurrentPlaceIndex int            `json:"currentPlaceIndex"`
}

// CoinProfile is the coin_profile document, created lazily on first access.
type CoinProfile struct {
	TotalCoins     int               `json:"totalCoins"`
	JourneyHistory []ArchivedJourney `json:"journeyHistory"`
}

// ToJourneyPlace freezes a liked place into journey state.
func (p TravelPlace) ToJourneyPlace() JourneyPlace {
	return JourneyPlace{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Lat:         p.Lat,
		Long:        p.Long,
		Rating:      p.Rating,
		Image:       p.Image,
		City:        p.City,
		Visited:     false,
		UserPhotos:  []string{},
		CoinsEarned: 0,
	}
}
