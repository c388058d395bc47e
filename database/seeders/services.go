package seeders

import (
	"log"

	serviceModel "car-service-booking/models/service"

	"gorm.io/gorm"
)

// SeedServices ensures the service catalog rows exist.
func SeedServices(db *gorm.DB) {
	log.Printf("🔍 Checking service catalog data integrity...")

	services := []serviceModel.Service{
		{
			Slug:            "preventive-maintenance-service",
			Name:            "Preventive Maintenance Service",
			Description:     "Scheduled maintenance covering engine oil, filters, fluid top-ups and a multi-point inspection.",
			Price:           3500,
			DurationMinutes: 180,
		},
		{
			Slug:            "body-repair-service",
			Name:            "Body Repair Service",
			Description:     "Dent removal, panel repair and repainting restoring the body to factory finish.",
			Price:           5000,
			DurationMinutes: 480,
		},
		{
			Slug:            "car-care-service",
			Name:            "Car Care Service",
			Description:     "Interior and exterior deep cleaning, polishing and detailing.",
			Price:           2500,
			DurationMinutes: 120,
		},
	}

	var existingSlugs []string
	if err := db.Model(&serviceModel.Service{}).Pluck("slug", &existingSlugs).Error; err != nil {
		log.Printf("❌ Failed to check existing services: %v", err)
		return
	}

	existingSlugsMap := make(map[string]bool)
	for _, slug := range existingSlugs {
		existingSlugsMap[slug] = true
	}

	var missingServices []serviceModel.Service
	for _, svc := range services {
		if !existingSlugsMap[svc.Slug] {
			missingServices = append(missingServices, svc)
		}
	}

	if len(missingServices) == 0 {
		log.Printf("✅ All services are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing services...", len(missingServices))

	for _, svc := range missingServices {
		if err := db.Create(&svc).Error; err != nil {
			log.Printf("❌ Failed to seed service %s: %v", svc.Name, err)
		} else {
			log.Printf("✅ Added: %s", svc.Name)
		}
	}

	log.Printf("🎉 Service seeding completed!")
}
