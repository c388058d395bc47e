package routes

import (
	authController "car-service-booking/controllers/auth"
	bookingController "car-service-booking/controllers/booking"
	paymentController "car-service-booking/controllers/payment"
	reportController "car-service-booking/controllers/report"
	serviceController "car-service-booking/controllers/service"
	vehicleController "car-service-booking/controllers/vehicle"
	"car-service-booking/database/repository"
	"car-service-booking/httpServices/mailer"
	"car-service-booking/logger"
	"car-service-booking/middleware"
	bookingService "car-service-booking/services/booking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	bookings := repository.NewBookingRepository(db)
	payments := repository.NewPaymentRepository(db)
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)
	services := repository.NewServiceRepository(db)
	ratings := repository.NewRatingRepository(db)
	reports := repository.NewReportRepository(db)

	mailClient := mailer.NewClient()
	lifecycle := bookingService.NewService(bookings, payments, users, vehicles, services, ratings, mailClient)

	authCtrl := authController.NewAuthController(users, asyncLogger)
	bookingCtrl := bookingController.NewBookingController(lifecycle, asyncLogger)
	paymentCtrl := paymentController.NewPaymentController(lifecycle, asyncLogger)
	vehicleCtrl := vehicleController.NewVehicleController(vehicles, asyncLogger)
	serviceCtrl := serviceController.NewServiceController(services)
	reportCtrl := reportController.NewReportController(reports)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":   "car-service-booking",
			"status": "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")

	api.Post("/auth/signup", authCtrl.Signup)
	api.Post("/auth/login", authCtrl.Login)
	api.Post("/auth/logout", authCtrl.Logout)

	api.Get("/services", serviceCtrl.Index)
	api.Get("/services/:slug", serviceCtrl.Show)
	api.Get("/catalog/cars", serviceCtrl.Catalog)

	// Booking creation and payment accept guests; identity, when carried,
	// is resolved inside the handlers.
	api.Post("/bookings", bookingCtrl.Store)
	api.Get("/bookings/history", bookingCtrl.History)
	api.Post("/bookings/:id/cancel", bookingCtrl.Cancel)
	api.Post("/payments", paymentCtrl.Store)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	api.Get("/auth/me", middleware.Protected(), authCtrl.Me)

	vehicleGroup := api.Group("/vehicles").Use(middleware.Protected())
	vehicleGroup.Get("/", vehicleCtrl.Index)
	vehicleGroup.Post("/", vehicleCtrl.Store)
	vehicleGroup.Put("/:id", vehicleCtrl.Update)
	vehicleGroup.Delete("/:id", vehicleCtrl.Destroy)

	api.Post("/bookings/:id/rate", middleware.Protected(), bookingCtrl.Rate)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	api.Get("/bookings", middleware.Protected(), middleware.RequireAdmin(), bookingCtrl.Index)
	api.Put("/bookings/:id", middleware.Protected(), middleware.RequireAdmin(), bookingCtrl.Update)
	api.Get("/reports/revenue", middleware.Protected(), middleware.RequireAdmin(), reportCtrl.Revenue)
}
