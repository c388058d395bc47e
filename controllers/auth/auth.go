package auth

import (
	"errors"
	"fmt"
	"time"

	"car-service-booking/constants"
	"car-service-booking/database/repository"
	"car-service-booking/logger"
	userModel "car-service-booking/models/user"
	"car-service-booking/types"
	authTypes "car-service-booking/types/auth"
	"car-service-booking/utils"
	"car-service-booking/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthController handles signup, login and session introspection
type AuthController struct {
	Users  repository.UserStore
	Logger *logger.AsyncLogger
}

// NewAuthController creates a new auth controller
func NewAuthController(users repository.UserStore, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{
		Users:  users,
		Logger: asyncLogger,
	}
}

// Signup registers a new customer account and returns a session token
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var req authTypes.SignupRequest
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

	if _, err := ac.Users.FindByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "An account with this email already exists",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
		})
	}

	user := &userModel.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     userModel.RoleCustomer,
	}
	if err := ac.Users.Create(user); err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create account",
		})
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	setSessionCookie(c, token)
	ac.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Success(fmt.Sprintf("User registered: %s", user.Email))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Account created successfully",
		Token:   token,
		Data:    toUserInfo(user),
	})
}

// Login authenticates a user and returns a session token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
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

	user, err := ac.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid email or password",
			})
		}
		logger.Error("Database error during login", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	setSessionCookie(c, token)
	ac.Logger.Log(utils.CreateSanitizedLogEntry(c))
	logger.Info(fmt.Sprintf("User logged in: %s", user.Email))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged in successfully",
		Token:   token,
		Data:    toUserInfo(user),
	})
}

// Logout clears the session cookie
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged out successfully",
	})
}

// Me returns the authenticated user's profile
func (ac *AuthController) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(constants.LocalsUserKey).(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	rawID, ok := claims[constants.ClaimUserID].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid token claims",
		})
	}

	user, err := ac.Users.FindByID(uint(rawID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "User not found",
			})
		}
		logger.Error("Database error while loading user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User profile",
		Data:    toUserInfo(user),
	})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(constants.TokenLifetimeHours * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func toUserInfo(user *userModel.User) authTypes.UserInfo {
	return authTypes.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		RewardPoints: user.RewardPoints,
	}
}
