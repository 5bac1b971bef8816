package db_models

import "github.com/lib/pq"

// Place is the catalog row. The catalog is read-only for this service;
// seeding and curation happen out of band.
type Place struct {
	BaseModel
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	City        string
	Country     string
	Rating      float64
	Image       string
	Tags        pq.StringArray `gorm:"type:text[]"`
	IsActive    bool
}
