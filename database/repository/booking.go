package repository

import (
	bookingModel "car-service-booking/models/booking"

	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository returns a GORM-backed BookingStore.
func NewBookingRepository(db *gorm.DB) BookingStore {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *bookingModel.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) FindByID(id uint) (*bookingModel.Booking, error) {
	var booking bookingModel.Booking
	if err := r.db.Preload("Service").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(booking *bookingModel.Booking) error {
	return r.db.Save(booking).Error
}

func (r *bookingRepository) List(status string) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	query := r.db.Preload("Service").Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HistoryForUser(userID uint) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	err := r.db.Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HistoryForEmail(email string) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking
	err := r.db.Preload("Service").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) RecordStatusEvent(event *bookingModel.BookingStatusEvent) error {
	return r.db.Create(event).Error
}
