package payment

import (
	"errors"

	"car-service-booking/logger"
	"car-service-booking/middleware"
	bookingService "car-service-booking/services/booking"
	"car-service-booking/types"
	paymentTypes "car-service-booking/types/payment"
	"car-service-booking/utils"
	"car-service-booking/validation"

	"github.com/gofiber/fiber/v2"
)

// PaymentController handles payment-related HTTP requests
type PaymentController struct {
	Service *bookingService.Service
	Logger  *logger.AsyncLogger
}

// NewPaymentController creates a new payment controller
func NewPaymentController(service *bookingService.Service, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// Store records a payment against a booking through the simulated gateway
func (pc *PaymentController) Store(c *fiber.Ctx) error {
	var req paymentTypes.PaymentCreateRequest
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

	userID, email := middleware.ResolveUserID(c)
	actor := bookingService.Actor{
		UserID:  userID,
		Email:   email,
		IsAdmin: middleware.IsAdminClaims(c),
	}

	result, err := pc.Service.RecordPayment(req, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: err.Error(),
			})
		case errors.Is(err, bookingService.ErrDuplicatePayment):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, bookingService.ErrInvalidTransition):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Booking is not awaiting payment",
			})
		default:
			logger.Error("Failed to record payment", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to record payment",
			})
		}
	}

	pc.Logger.Log(utils.CreateSanitizedLogEntry(c))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Payment recorded successfully",
		Data:    result,
	})
}
