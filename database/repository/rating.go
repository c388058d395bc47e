package repository

import (
	ratingModel "car-service-booking/models/rating"

	"gorm.io/gorm"
)

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a GORM-backed RatingStore.
func NewRatingRepository(db *gorm.DB) RatingStore {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(rating *ratingModel.Rating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) FindByBookingID(bookingID uint) (*ratingModel.Rating, error) {
	var rating ratingModel.Rating
	if err := r.db.Where("booking_id = ?", bookingID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}
