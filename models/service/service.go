package service

import (
	"time"
)

// Service is a catalog entry. Seeded at startup; also lazily created by
// name at booking time when a booking references an unknown service.
type Service struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string  `gorm:"type:varchar(100);not null;unique" json:"slug"`
	Name        string  `gorm:"type:varchar(255);not null;unique" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	// DurationMinutes is the expected on-site time for the service.
	DurationMinutes int `gorm:"not null;default:60" json:"duration_minutes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
