package service

import (
	"errors"

	"car-service-booking/database/repository"
	"car-service-booking/logger"
	"car-service-booking/resource"
	"car-service-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceController serves the public service catalog and car reference data
type ServiceController struct {
	Services repository.ServiceStore
}

// NewServiceController creates a new service controller
func NewServiceController(services repository.ServiceStore) *ServiceController {
	return &ServiceController{Services: services}
}

// Index lists all services
func (sc *ServiceController) Index(c *fiber.Ctx) error {
	services, err := sc.Services.List()
	if err != nil {
		logger.Error("Failed to list services", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list services",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Services retrieved successfully",
		Data:    services,
	})
}

// Show returns one service by slug
func (sc *ServiceController) Show(c *fiber.Ctx) error {
	slug := c.Params("slug")
	service, err := sc.Services.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service not found",
			})
		}
		logger.Error("Database error while loading service", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service retrieved successfully",
		Data:    service,
	})
}

// Catalog returns the static car brand/model reference data
func (sc *ServiceController) Catalog(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Car catalog retrieved successfully",
		Data:    resource.CarBrands,
	})
}
