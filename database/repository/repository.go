package repository

import (
	"time"

	bookingModel "car-service-booking/models/booking"
	paymentModel "car-service-booking/models/payment"
	ratingModel "car-service-booking/models/rating"
	serviceModel "car-service-booking/models/service"
	userModel "car-service-booking/models/user"
	vehicleModel "car-service-booking/models/vehicle"
)

// BookingStore persists bookings and their status history.
type BookingStore interface {
	Create(booking *bookingModel.Booking) error
	FindByID(id uint) (*bookingModel.Booking, error)
	Update(booking *bookingModel.Booking) error
	List(status string) ([]bookingModel.Booking, error)
	HistoryForUser(userID uint) ([]bookingModel.Booking, error)
	HistoryForEmail(email string) ([]bookingModel.Booking, error)
	RecordStatusEvent(event *bookingModel.BookingStatusEvent) error
}

// PaymentStore persists payments.
type PaymentStore interface {
	Create(payment *paymentModel.Payment) error
	FindByBookingID(bookingID uint) (*paymentModel.Payment, error)
	Update(payment *paymentModel.Payment) error
}

// UserStore persists user accounts.
type UserStore interface {
	Create(user *userModel.User) error
	FindByID(id uint) (*userModel.User, error)
	FindByEmail(email string) (*userModel.User, error)
	AddRewardPoints(userID uint, points int) error
}

// VehicleStore persists saved vehicles.
type VehicleStore interface {
	Create(vehicle *vehicleModel.Vehicle) error
	FindByID(id uint) (*vehicleModel.Vehicle, error)
	ListByUser(userID uint) ([]vehicleModel.Vehicle, error)
	Update(vehicle *vehicleModel.Vehicle) error
	Delete(id uint) error
}

// ServiceStore persists the service catalog.
type ServiceStore interface {
	List() ([]serviceModel.Service, error)
	FindBySlug(slug string) (*serviceModel.Service, error)
	FindOrCreateByName(name string, basePrice float64) (*serviceModel.Service, error)
}

// RatingStore persists booking ratings.
type RatingStore interface {
	Create(rating *ratingModel.Rating) error
	FindByBookingID(bookingID uint) (*ratingModel.Rating, error)
}

// RevenueRow is one bucket of the revenue report.
type RevenueRow struct {
	Method string  `json:"method"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

// ReportStore aggregates payments for admin reporting.
type ReportStore interface {
	RevenueByMethod(from, to time.Time) ([]RevenueRow, error)
	RevenueTotal(from, to time.Time) (float64, error)
}
