package middleware

import (
	"car-service-booking/constants"
	userModel "car-service-booking/models/user"
	"car-service-booking/types"
	"car-service-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected requires a valid JWT in the Authorization header or the token
// cookie. Claims land in c.Locals for downstream handlers.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.TokenFromContext(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(constants.LocalsUserKey, claims)
		return c.Next()
	}
}

// RequireAdmin requires an authenticated admin. Must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(constants.LocalsUserKey).(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}
		role, _ := claims[constants.ClaimRole].(string)
		if role != userModel.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Admin access required",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// ResolveUserID extracts the caller's user id from a token when one is
// present. Missing or invalid tokens yield (nil, ""): the caller is treated
// as a guest, never rejected.
func ResolveUserID(c *fiber.Ctx) (*uint, string) {
	claims, ok := c.Locals(constants.LocalsUserKey).(jwt.MapClaims)
	if !ok {
		tokenString := utils.TokenFromContext(c)
		if tokenString == "" {
			return nil, ""
		}
		parsed, err := utils.ParseToken(tokenString)
		if err != nil {
			return nil, ""
		}
		claims = parsed
	}

	rawID, ok := claims[constants.ClaimUserID].(float64)
	if !ok {
		return nil, ""
	}
	userID := uint(rawID)
	email, _ := claims[constants.ClaimEmail].(string)
	return &userID, email
}

// IsAdminClaims reports whether the resolved claims carry the admin role.
func IsAdminClaims(c *fiber.Ctx) bool {
	claims, ok := c.Locals(constants.LocalsUserKey).(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims[constants.ClaimRole].(string)
	return role == userModel.RoleAdmin
}
