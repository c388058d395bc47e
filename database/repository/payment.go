package repository

import (
	paymentModel "car-service-booking/models/payment"

	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository returns a GORM-backed PaymentStore.
func NewPaymentRepository(db *gorm.DB) PaymentStore {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *paymentModel.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) FindByBookingID(bookingID uint) (*paymentModel.Payment, error) {
	var payment paymentModel.Payment
	if err := r.db.Where("booking_id = ?", bookingID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Update(payment *paymentModel.Payment) error {
	return r.db.Save(payment).Error
}
