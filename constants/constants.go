package constants

// Context locals keys
const (
	LocalsUserKey = "user"
)

// JWT claim names
const (
	ClaimUserID = "user_id"
	ClaimEmail  = "email"
	ClaimRole   = "role"
)

// Reward points granted per eligible prepaid booking.
const RewardPointsPerBooking = 100

// Token lifetime in hours.
const TokenLifetimeHours = 24 * 7
