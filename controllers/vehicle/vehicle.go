package vehicle

import (
	"errors"
	"strconv"

	"car-service-booking/constants"
	"car-service-booking/database/repository"
	"car-service-booking/logger"
	vehicleModel "car-service-booking/models/vehicle"
	"car-service-booking/types"
	vehicleTypes "car-service-booking/types/vehicle"
	"car-service-booking/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// VehicleController handles the authenticated user's saved vehicles
type VehicleController struct {
	Vehicles repository.VehicleStore
	Logger   *logger.AsyncLogger
}

// NewVehicleController creates a new vehicle controller
func NewVehicleController(vehicles repository.VehicleStore, asyncLogger *logger.AsyncLogger) *VehicleController {
	return &VehicleController{
		Vehicles: vehicles,
		Logger:   asyncLogger,
	}
}

// Index lists the caller's saved vehicles
func (vc *VehicleController) Index(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	vehicles, err := vc.Vehicles.ListByUser(userID)
	if err != nil {
		logger.Error("Failed to list vehicles", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list vehicles",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicles retrieved successfully",
		Data:    vehicles,
	})
}

// Store saves a new vehicle to the caller's garage
func (vc *VehicleController) Store(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req vehicleTypes.VehicleCreateRequest
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

	vehicle := &vehicleModel.Vehicle{
		UserID:   userID,
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		FuelType: req.FuelType,
	}
	if err := vc.Vehicles.Create(vehicle); err != nil {
		logger.Error("Failed to create vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save vehicle",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Vehicle saved successfully",
		Data:    vehicle,
	})
}

// Update edits one of the caller's saved vehicles
func (vc *VehicleController) Update(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	vehicle, errResp := vc.loadOwnedVehicle(c, userID)
	if errResp != nil {
		return errResp(c)
	}

	var req vehicleTypes.VehicleUpdateRequest
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

	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = req.Year
	}
	if req.FuelType != nil {
		vehicle.FuelType = *req.FuelType
	}

	if err := vc.Vehicles.Update(vehicle); err != nil {
		logger.Error("Failed to update vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update vehicle",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle updated successfully",
		Data:    vehicle,
	})
}

// Destroy removes one of the caller's saved vehicles
func (vc *VehicleController) Destroy(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	vehicle, errResp := vc.loadOwnedVehicle(c, userID)
	if errResp != nil {
		return errResp(c)
	}

	if err := vc.Vehicles.Delete(vehicle.ID); err != nil {
		logger.Error("Failed to delete vehicle", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete vehicle",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle deleted successfully",
	})
}

// loadOwnedVehicle resolves the :id param to a vehicle owned by userID.
// Vehicles owned by someone else answer 404, not 403, so ids cannot be
// probed.
func (vc *VehicleController) loadOwnedVehicle(c *fiber.Ctx, userID uint) (*vehicleModel.Vehicle, func(*fiber.Ctx) error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid vehicle id",
			})
		}
	}

	vehicle, err := vc.Vehicles.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		logger.Error("Database error while loading vehicle", err)
		return nil, func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
			})
		}
	}

	if vehicle.UserID != userID {
		return nil, notFound
	}
	return vehicle, nil
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	claims, ok := c.Locals(constants.LocalsUserKey).(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	rawID, ok := claims[constants.ClaimUserID].(float64)
	if !ok {
		return 0, false
	}
	return uint(rawID), true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: "Vehicle not found",
	})
}
