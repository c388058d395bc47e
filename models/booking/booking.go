package booking

import (
	serviceModel "car-service-booking/models/service"
	userModel "car-service-booking/models/user"
	"time"
)

// Booking is one service request: customer contact details, a copied
// vehicle descriptor, the chosen service and an appointment slot. UserID is
// nil for guest bookings.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID *uint           `gorm:"index" json:"user_id,omitempty"`
	User   *userModel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	VehicleID *uint `gorm:"index" json:"vehicle_id,omitempty"`

	ServiceID uint                 `gorm:"not null;index" json:"service_id"`
	Service   serviceModel.Service `gorm:"foreignKey:ServiceID" json:"service"`

	CustomerName  string `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(20);not null" json:"customer_phone"`

	CarMake  string `gorm:"type:varchar(50);not null" json:"car_make"`
	CarModel string `gorm:"type:varchar(50);not null" json:"car_model"`
	FuelType string `gorm:"type:varchar(20);not null" json:"fuel_type"`

	AppointmentDate time.Time `gorm:"not null" json:"appointment_date"`
	Address         string    `gorm:"type:text;not null" json:"address"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status"`

	// RewardPoints is nonzero only after a non-cash payment completed for a
	// registered (non-guest) booking.
	RewardPoints int  `gorm:"not null;default:0" json:"reward_points"`
	IsGuest      bool `gorm:"not null;default:false" json:"is_guest"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
