package rating

import (
	bookingModel "car-service-booking/models/booking"
	"time"
)

// Rating is customer feedback for a booking: a 1-5 score plus a free-text
// comment. No aggregation exists over these rows.
type Rating struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint                 `gorm:"not null;index" json:"booking_id"`
	Booking   bookingModel.Booking `gorm:"foreignKey:BookingID" json:"-"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
