package report

import (
	"time"

	"car-service-booking/database/repository"
	"car-service-booking/logger"
	"car-service-booking/types"
	"car-service-booking/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// ReportController serves admin revenue reports
type ReportController struct {
	Reports repository.ReportStore
}

// NewReportController creates a new report controller
func NewReportController(reports repository.ReportStore) *ReportController {
	return &ReportController{Reports: reports}
}

// RevenueReport is the revenue report response payload.
type RevenueReport struct {
	From     time.Time               `json:"from"`
	To       time.Time               `json:"to"`
	Total    float64                 `json:"total"`
	ByMethod []repository.RevenueRow `json:"by_method"`
}

// Revenue aggregates completed payments over a date window. Defaults to the
// current month when no window is given.
func (rc *ReportController) Revenue(c *fiber.Ctx) error {
	from := now.BeginningOfMonth()
	to := now.EndOfMonth().Add(time.Nanosecond)

	if raw := c.Query("from"); raw != "" {
		parsed, err := validation.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid from date",
			})
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := validation.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid to date",
			})
		}
		// Window is half-open, so advance the inclusive end date by a day.
		to = parsed.AddDate(0, 0, 1)
	}

	if !to.After(from) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Window end must be after window start",
		})
	}

	rows, err := rc.Reports.RevenueByMethod(from, to)
	if err != nil {
		logger.Error("Failed to aggregate revenue by method", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to build revenue report",
		})
	}

	total, err := rc.Reports.RevenueTotal(from, to)
	if err != nil {
		logger.Error("Failed to aggregate total revenue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to build revenue report",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Revenue report built successfully",
		Data: RevenueReport{
			From:     from,
			To:       to,
			Total:    total,
			ByMethod: rows,
		},
	})
}
