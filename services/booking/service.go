package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"car-service-booking/constants"
	"car-service-booking/database/repository"
	"car-service-booking/httpServices/mailer"
	"car-service-booking/logger"
	bookingModel "car-service-booking/models/booking"
	paymentModel "car-service-booking/models/payment"
	ratingModel "car-service-booking/models/rating"
	"car-service-booking/resource"
	bookingTypes "car-service-booking/types/booking"
	paymentTypes "car-service-booking/types/payment"
	"car-service-booking/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sentinel errors mapped to HTTP statuses by the controllers.
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrDuplicatePayment  = errors.New("payment already recorded for this booking")
	ErrDuplicateRating   = errors.New("booking has already been rated")
	ErrNotCancellable    = errors.New("booking can no longer be cancelled")
	ErrBookingCancelled  = errors.New("cancelled bookings cannot be modified")
	ErrNotRatable        = errors.New("only completed bookings can be rated")
	ErrNotOwner          = errors.New("booking belongs to another user")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Actor identifies who is performing an operation. A nil UserID means the
// caller carried no resolvable identity (guest).
type Actor struct {
	UserID  *uint
	Email   string
	IsAdmin bool
}

func (a Actor) label() string {
	if a.IsAdmin {
		return "admin"
	}
	if a.UserID != nil {
		return fmt.Sprintf("user:%d", *a.UserID)
	}
	return "guest"
}

// Mailer is the subset of the mail client the booking service uses.
type Mailer interface {
	SendInvoice(to string, data mailer.InvoiceData) error
	SendCancellation(to string, data mailer.CancellationData) error
	SendCompletion(to string, data mailer.CompletionData) error
}

// Service drives the booking lifecycle: creation, payment, cancellation,
// admin updates, rating and history.
type Service struct {
	bookings repository.BookingStore
	payments repository.PaymentStore
	users    repository.UserStore
	vehicles repository.VehicleStore
	services repository.ServiceStore
	ratings  repository.RatingStore
	mail     Mailer
}

// NewService wires a booking service from its stores and mail client.
func NewService(
	bookings repository.BookingStore,
	payments repository.PaymentStore,
	users repository.UserStore,
	vehicles repository.VehicleStore,
	services repository.ServiceStore,
	ratings repository.RatingStore,
	mail Mailer,
) *Service {
	return &Service{
		bookings: bookings,
		payments: payments,
		users:    users,
		vehicles: vehicles,
		services: services,
		ratings:  ratings,
		mail:     mail,
	}
}

// CreateResult is what a successful booking creation returns.
type CreateResult struct {
	Booking        *bookingModel.Booking `json:"booking"`
	EstimatedPrice float64               `json:"estimated_price"`
}

// Create registers a new booking in PENDING status. The actor may be a
// guest; registered callers can attach one of their saved vehicles.
func (s *Service) Create(req bookingTypes.BookingCreateRequest, actor Actor) (*CreateResult, error) {
	appointment, err := validation.ParseDate(req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("parse appointment date: %w", err)
	}

	service, err := s.services.FindOrCreateByName(req.ServiceName, resource.BasePriceForService(req.ServiceName))
	if err != nil {
		return nil, fmt.Errorf("resolve service: %w", err)
	}

	var vehicleID *uint
	if req.VehicleID != nil {
		if actor.UserID == nil {
			return nil, ErrVehicleNotFound
		}
		vehicle, err := s.vehicles.FindByID(*req.VehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, err
		}
		if vehicle.UserID != *actor.UserID {
			return nil, ErrVehicleNotFound
		}
		vehicleID = req.VehicleID
	}

	booking := &bookingModel.Booking{
		UserID:          actor.UserID,
		VehicleID:       vehicleID,
		ServiceID:       service.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone:   req.CustomerPhone,
		CarMake:         req.CarMake,
		CarModel:        req.CarModel,
		FuelType:        req.FuelType,
		AppointmentDate: appointment,
		Address:         req.Address,
		Status:          bookingModel.BookingStatusPending,
		IsGuest:         actor.UserID == nil,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	booking.Service = *service

	s.recordStatusEvent(booking.ID, bookingModel.BookingStatusPending, actor)
	logger.Success(fmt.Sprintf("Booking #%d created (%s) by %s", booking.ID, service.Name, actor.label()))

	return &CreateResult{
		Booking:        booking,
		EstimatedPrice: resource.CalculateServicePrice(req.CarMake, req.CarModel, req.ServiceName),
	}, nil
}

// PaymentResult is what a successful payment returns.
type PaymentResult struct {
	Payment      *paymentModel.Payment `json:"payment"`
	Booking      *bookingModel.Booking `json:"booking"`
	RewardPoints int                   `json:"reward_points"`
}

// RecordPayment settles a booking through the simulated gateway. Non-cash
// methods complete immediately with a generated transaction id; cash stays
// pending until collected. A settled payment confirms the booking and, for
// prepaid registered customers, grants reward points.
func (s *Service) RecordPayment(req paymentTypes.PaymentCreateRequest, actor Actor) (*PaymentResult, error) {
	booking, err := s.bookings.FindByID(req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if _, err := s.payments.FindByBookingID(booking.ID); err == nil {
		return nil, ErrDuplicatePayment
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(bookingModel.BookingStatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	method := paymentModel.PaymentMethod(req.Method)
	payment := &paymentModel.Payment{
		BookingID: booking.ID,
		Amount:    req.Amount,
		Method:    method,
		Status:    method.InitialStatus(),
	}
	if method != paymentModel.PaymentMethodCash {
		txn := "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
		payment.TransactionID = &txn
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	booking.Status = bookingModel.BookingStatusConfirmed

	points := 0
	if method != paymentModel.PaymentMethodCash && booking.UserID != nil {
		points = constants.RewardPointsPerBooking
		booking.RewardPoints = points
		if err := s.users.AddRewardPoints(*booking.UserID, points); err != nil {
			logger.Error(fmt.Sprintf("Failed to grant reward points for booking #%d", booking.ID), err)
		}
	}

	if err := s.bookings.Update(booking); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	s.recordStatusEvent(booking.ID, bookingModel.BookingStatusConfirmed, actor)
	logger.Success(fmt.Sprintf("Payment recorded for booking #%d via %s (%s)", booking.ID, method, payment.Status))

	// Cash settles at the workshop, so only settled non-cash payments get
	// an invoice.
	if method != paymentModel.PaymentMethodCash {
		go s.sendInvoiceEmail(booking, payment, points)
	}

	return &PaymentResult{Payment: payment, Booking: booking, RewardPoints: points}, nil
}

// CancelResult is what a successful cancellation returns.
type CancelResult struct {
	Booking      *bookingModel.Booking `json:"booking"`
	RefundAmount float64               `json:"refund_amount"`
}

// Cancel moves a booking to CANCELLED. Only PENDING and CONFIRMED bookings
// qualify. When the booking was prepaid the payment moves to REFUND_PENDING
// and the refund amount is reported back.
func (s *Service) Cancel(bookingID uint, actor Actor) (*CancelResult, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// A resolved identity that does not match the owner is rejected; a
	// guest caller skips the ownership check.
	if !actor.IsAdmin && actor.UserID != nil && booking.UserID != nil && *booking.UserID != *actor.UserID {
		return nil, ErrNotOwner
	}

	if !booking.Status.CanBeCancelled() {
		return nil, ErrNotCancellable
	}

	refundAmount := 0.0
	payment, err := s.payments.FindByBookingID(booking.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if payment != nil && payment.IsPrepaid() {
		payment.Status = paymentModel.PaymentStatusRefundPending
		if err := s.payments.Update(payment); err != nil {
			return nil, fmt.Errorf("mark refund pending: %w", err)
		}
		refundAmount = payment.Amount
	}

	booking.Status = bookingModel.BookingStatusCancelled
	if err := s.bookings.Update(booking); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	s.recordStatusEvent(booking.ID, bookingModel.BookingStatusCancelled, actor)
	logger.Info(fmt.Sprintf("Booking #%d cancelled by %s (refund %.2f)", booking.ID, actor.label(), refundAmount))

	go s.sendCancellationEmail(booking, refundAmount)

	return &CancelResult{Booking: booking, RefundAmount: refundAmount}, nil
}

// Update applies an admin edit to a booking. Status changes must follow the
// lifecycle state machine; moving to COMPLETED notifies the customer.
func (s *Service) Update(bookingID uint, req bookingTypes.BookingUpdateRequest, actor Actor) (*bookingModel.Booking, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.Status == bookingModel.BookingStatusCancelled {
		return nil, ErrBookingCancelled
	}

	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = strings.ToLower(strings.TrimSpace(*req.CustomerEmail))
	}
	if req.CustomerPhone != nil {
		booking.CustomerPhone = *req.CustomerPhone
	}
	if req.CarMake != nil {
		booking.CarMake = *req.CarMake
	}
	if req.CarModel != nil {
		booking.CarModel = *req.CarModel
	}
	if req.FuelType != nil {
		booking.FuelType = *req.FuelType
	}
	if req.AppointmentDate != nil {
		appointment, err := validation.ParseDate(*req.AppointmentDate)
		if err != nil {
			return nil, fmt.Errorf("parse appointment date: %w", err)
		}
		booking.AppointmentDate = appointment
	}
	if req.Address != nil {
		booking.Address = *req.Address
	}

	statusChanged := false
	if req.Status != nil {
		newStatus := bookingModel.BookingStatus(*req.Status)
		if !newStatus.IsValid() {
			return nil, ErrInvalidTransition
		}
		if newStatus != booking.Status {
			if !booking.Status.CanTransitionTo(newStatus) {
				return nil, ErrInvalidTransition
			}
			booking.Status = newStatus
			statusChanged = true
		}
	}

	if err := s.bookings.Update(booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if statusChanged {
		s.recordStatusEvent(booking.ID, booking.Status, actor)
		logger.Info(fmt.Sprintf("Booking #%d moved to %s by %s", booking.ID, booking.Status, actor.label()))
		if booking.Status == bookingModel.BookingStatusCompleted {
			go s.sendCompletionEmail(booking)
		}
	}

	return booking, nil
}

// Rate records a score for a completed booking. One rating per booking.
func (s *Service) Rate(bookingID uint, req bookingTypes.RateRequest, actor Actor) (*ratingModel.Rating, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !actor.IsAdmin && actor.UserID != nil && booking.UserID != nil && *booking.UserID != *actor.UserID {
		return nil, ErrNotOwner
	}

	if booking.Status != bookingModel.BookingStatusCompleted {
		return nil, ErrNotRatable
	}

	if _, err := s.ratings.FindByBookingID(booking.ID); err == nil {
		return nil, ErrDuplicateRating
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &ratingModel.Rating{
		BookingID: booking.ID,
		Score:     req.Score,
		Comment:   req.Comment,
	}
	if err := s.ratings.Create(rating); err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	logger.Info(fmt.Sprintf("Booking #%d rated %d/5", booking.ID, req.Score))

	return rating, nil
}

// HistoryResult is a customer's booking history with aggregates.
type HistoryResult struct {
	Bookings     []bookingModel.Booking    `json:"bookings"`
	TotalRewards int                       `json:"total_rewards"`
	Stats        bookingTypes.HistoryStats `json:"stats"`
}

// History returns the caller's bookings: everything linked to their user id
// plus guest bookings made under their verified token email. A caller whose
// identity cannot be resolved gets an empty result, not an error.
func (s *Service) History(actor Actor) (*HistoryResult, error) {
	if actor.UserID == nil {
		return &HistoryResult{Bookings: []bookingModel.Booking{}}, nil
	}

	bookings, err := s.bookings.HistoryForUser(*actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	if actor.Email != "" {
		guestBookings, err := s.bookings.HistoryForEmail(strings.ToLower(strings.TrimSpace(actor.Email)))
		if err != nil {
			return nil, fmt.Errorf("load guest history: %w", err)
		}
		for _, b := range guestBookings {
			if b.UserID == nil {
				bookings = append(bookings, b)
			}
		}
	}

	result := &HistoryResult{Bookings: bookings}
	for _, b := range bookings {
		result.TotalRewards += b.RewardPoints
		result.Stats.Total++
		switch {
		case b.Status.IsOpen():
			result.Stats.Pending++
		case b.Status == bookingModel.BookingStatusCompleted:
			result.Stats.Completed++
		}
	}
	return result, nil
}

// List returns all bookings, optionally filtered by status. Admin only.
func (s *Service) List(status string) ([]bookingModel.Booking, error) {
	if status != "" && !bookingModel.BookingStatus(status).IsValid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	return s.bookings.List(status)
}

func (s *Service) recordStatusEvent(bookingID uint, status bookingModel.BookingStatus, actor Actor) {
	event := &bookingModel.BookingStatusEvent{
		BookingID: bookingID,
		Status:    status,
		CreatedBy: actor.label(),
		CreatedAt: time.Now(),
	}
	if err := s.bookings.RecordStatusEvent(event); err != nil {
		logger.Error(fmt.Sprintf("Failed to record status event for booking #%d", bookingID), err)
	}
}

func (s *Service) sendInvoiceEmail(booking *bookingModel.Booking, payment *paymentModel.Payment, points int) {
	txn := ""
	if payment.TransactionID != nil {
		txn = *payment.TransactionID
	}
	data := mailer.InvoiceData{
		CustomerName:    booking.CustomerName,
		BookingID:       booking.ID,
		ServiceName:     booking.Service.Name,
		CarMake:         booking.CarMake,
		CarModel:        booking.CarModel,
		AppointmentDate: booking.AppointmentDate.Format("02 Jan 2006"),
		Amount:          payment.Amount,
		Method:          payment.Method.String(),
		TransactionID:   txn,
		RewardPoints:    points,
	}
	if err := s.mail.SendInvoice(booking.CustomerEmail, data); err != nil {
		logger.Warning(fmt.Sprintf("Invoice email failed for booking #%d: %v", booking.ID, err))
	}
}

func (s *Service) sendCancellationEmail(booking *bookingModel.Booking, refundAmount float64) {
	data := mailer.CancellationData{
		CustomerName:    booking.CustomerName,
		BookingID:       booking.ID,
		ServiceName:     booking.Service.Name,
		AppointmentDate: booking.AppointmentDate.Format("02 Jan 2006"),
		RefundAmount:    refundAmount,
	}
	if err := s.mail.SendCancellation(booking.CustomerEmail, data); err != nil {
		logger.Warning(fmt.Sprintf("Cancellation email failed for booking #%d: %v", booking.ID, err))
	}
}

func (s *Service) sendCompletionEmail(booking *bookingModel.Booking) {
	data := mailer.CompletionData{
		CustomerName: booking.CustomerName,
		BookingID:    booking.ID,
		ServiceName:  booking.Service.Name,
		CarMake:      booking.CarMake,
		CarModel:     booking.CarModel,
		RewardPoints: booking.RewardPoints,
	}
	if err := s.mail.SendCompletion(booking.CustomerEmail, data); err != nil {
		logger.Warning(fmt.Sprintf("Completion email failed for booking #%d: %v", booking.ID, err))
	}
}
