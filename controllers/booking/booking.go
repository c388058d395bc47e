package booking

import (
	"errors"
	"strconv"

	"car-service-booking/logger"
	"car-service-booking/middleware"
	bookingService "car-service-booking/services/booking"
	"car-service-booking/types"
	bookingTypes "car-service-booking/types/booking"
	"car-service-booking/utils"
	"car-service-booking/validation"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.Service
	Logger  *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(service *bookingService.Service, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		Service: service,
		Logger:  asyncLogger,
	}
}

func (bc *BookingController) actor(c *fiber.Ctx) bookingService.Actor {
	userID, email := middleware.ResolveUserID(c)
	return bookingService.Actor{
		UserID:  userID,
		Email:   email,
		IsAdmin: middleware.IsAdminClaims(c),
	}
}

// Store creates a new booking. Guests are allowed.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if fieldErrors := validation.Validate(req); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Errors:  fieldErrors,
		})
	}

	result, err := bc.Service.Create(req, bc.actor(c))
	if err != nil {
		return bc.respondServiceError(c, err, "Failed to create booking")
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    result,
	})
}

// Index lists all bookings, optionally filtered by status. Admin only.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	status := c.Query("status")
	bookings, err := bc.Service.List(status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// History returns the caller's booking history with reward and status
// aggregates. Callers without a resolvable identity get an empty result.
func (bc *BookingController) History(c *fiber.Ctx) error {
	result, err := bc.Service.History(bc.actor(c))
	if err != nil {
		logger.Error("Failed to load booking history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load booking history",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking history retrieved successfully",
		Data:    result,
	})
}

// Update applies an admin edit to a booking, including status transitions
func (bc *BookingController) Update(c *fiber.Ctx) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "No fields to update",
		})
	}

	if fieldErrors := validation.Validate(req); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Errors:  fieldErrors,
		})
	}

	booking, err := bc.Service.Update(bookingID, req, bc.actor(c))
	if err != nil {
		return bc.respondServiceError(c, err, "Failed to update booking")
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    booking,
	})
}

// Cancel cancels a booking, marking any prepaid payment for refund
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	result, err := bc.Service.Cancel(bookingID, bc.actor(c))
	if err != nil {
		return bc.respondServiceError(c, err, "Failed to cancel booking")
	}

	bc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    result,
	})
}

// Rate records a score for a completed booking
func (bc *BookingController) Rate(c *fiber.Ctx) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
		})
	}

	var req bookingTypes.RateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if fieldErrors := validation.Validate(req); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Errors:  fieldErrors,
		})
	}

	rating, err := bc.Service.Rate(bookingID, req, bc.actor(c))
	if err != nil {
		return bc.respondServiceError(c, err, "Failed to rate booking")
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Rating recorded successfully",
		Data:    rating,
	})
}

func (bc *BookingController) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, bookingService.ErrBookingNotFound),
		errors.Is(err, bookingService.ErrVehicleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, bookingService.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, bookingService.ErrDuplicatePayment),
		errors.Is(err, bookingService.ErrDuplicateRating),
		errors.Is(err, bookingService.ErrNotCancellable),
		errors.Is(err, bookingService.ErrNotRatable),
		errors.Is(err, bookingService.ErrBookingCancelled),
		errors.Is(err, bookingService.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		logger.Error(fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func parseBookingID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
