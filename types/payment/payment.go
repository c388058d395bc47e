package payment

// PaymentCreateRequest is the payload for recording a payment against a
// booking. Non-cash methods settle immediately; cash stays pending until
// collected at the workshop.
type PaymentCreateRequest struct {
	BookingID uint    `json:"booking_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=CARD UPI NET_BANKING CASH"`
}
