package vehicle

import (
	userModel "car-service-booking/models/user"
	"time"
)

// Vehicle is a saved car profile owned by a registered user. Bookings copy
// the vehicle attributes rather than referencing the row, so deleting a
// vehicle never touches booking history.
type Vehicle struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint           `gorm:"not null;index" json:"user_id"`
	User   userModel.User `gorm:"foreignKey:UserID" json:"-"`

	Make     string `gorm:"type:varchar(50);not null" json:"make"`
	Model    string `gorm:"type:varchar(50);not null" json:"model"`
	Year     *int   `gorm:"type:integer" json:"year,omitempty"`
	FuelType string `gorm:"type:varchar(20);not null" json:"fuel_type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
