package db_models

// Document keys for the per-user key-value store.
const (
	DocActiveJourney = "active_journey"
	DocCoinProfile   = "coin_profile"
	DocLikedPlaces   = "liked_places"
)

// UserDocument is one per-user document row. The swipe subsystem owns
// liked_places; this service owns active_journey and coin_profile.
type UserDocument struct {
	UserID    string `gorm:"primaryKey;column:user_id"`
	DocKey    string `gorm:"primaryKey;column:doc_key"`
	Value     []byte `gorm:"type:jsonb"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (UserDocument) TableName() string { return "user_documents" }
