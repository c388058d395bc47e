package user

import (
	"time"
)

// Role values stored on a User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a registered account. RewardPoints is the cumulative loyalty
// counter incremented by prepaid, non-cash payments.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:customer" json:"role"`
	RewardPoints int    `gorm:"not null;default:0" json:"reward_points"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
