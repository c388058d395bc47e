package booking

// BookingStatus is the lifecycle state of a Booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no transition leaves this status.
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCompleted || bs == BookingStatusCancelled
}

// CanBeCancelled returns true if a cancel request is permitted from this
// status. Only PENDING and CONFIRMED bookings may be cancelled.
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed
}

// IsOpen returns true if the booking still counts as pending work for
// history stats (PENDING, CONFIRMED or IN_PROGRESS).
func (bs BookingStatus) IsOpen() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed || bs == BookingStatusInProgress
}

// CanTransitionTo reports whether the state machine permits moving from bs
// to next.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch bs {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusInProgress || next == BookingStatusCompleted || next == BookingStatusCancelled
	case BookingStatusInProgress:
		return next == BookingStatusCompleted
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses.
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}
