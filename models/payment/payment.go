package payment

import (
	bookingModel "car-service-booking/models/booking"
	"time"
)

// Payment is the one-to-one financial record for a booking. Cash payments
// carry no transaction id and start PENDING; every other method is treated
// as settled immediately (no real gateway integration).
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint                 `gorm:"not null;unique" json:"booking_id"`
	Booking   bookingModel.Booking `gorm:"foreignKey:BookingID" json:"-"`

	Amount        float64       `gorm:"not null" json:"amount"`
	Method        PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	TransactionID *string       `gorm:"type:varchar(64)" json:"transaction_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsPrepaid reports whether the payment settled up front: completed and not
// cash. Prepaid payments are the only ones eligible for refund marking.
func (p *Payment) IsPrepaid() bool {
	return p.Status == PaymentStatusCompleted && p.Method != PaymentMethodCash
}
