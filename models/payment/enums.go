package payment

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NET_BANKING"
	PaymentMethodCash       PaymentMethod = "CASH"
)

func (pm PaymentMethod) String() string {
	return string(pm)
}

func (pm PaymentMethod) IsValid() bool {
	switch pm {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetBanking, PaymentMethodCash:
		return true
	default:
		return false
	}
}

// InitialStatus returns the status a fresh payment starts in: cash settles
// on site so it stays PENDING, everything else completes immediately.
func (pm PaymentMethod) InitialStatus() PaymentStatus {
	if pm == PaymentMethodCash {
		return PaymentStatusPending
	}
	return PaymentStatusCompleted
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusCompleted     PaymentStatus = "COMPLETED"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusRefundPending PaymentStatus = "REFUND_PENDING"
)

func (ps PaymentStatus) String() string {
	return string(ps)
}

func (ps PaymentStatus) IsValid() bool {
	switch ps {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefundPending:
		return true
	default:
		return false
	}
}
