package seeders

import (
	"log"
	"os"

	userModel "car-service-booking/models/user"
	"car-service-booking/utils"

	"gorm.io/gorm"
)

// SeedAdminUser ensures the default admin account exists. Credentials come
// from ADMIN_EMAIL / ADMIN_PASSWORD with dev defaults.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@carservice.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin@12345"
	}

	var count int64
	if err := db.Model(&userModel.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Admin user already present. No seeding needed.")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.User{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     userModel.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("🎉 Seeded admin user %s", email)
}
