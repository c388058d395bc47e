package repository

import (
	"errors"
	"strings"

	serviceModel "car-service-booking/models/service"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository returns a GORM-backed ServiceStore.
func NewServiceRepository(db *gorm.DB) ServiceStore {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List() ([]serviceModel.Service, error) {
	var services []serviceModel.Service
	if err := r.db.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindBySlug(slug string) (*serviceModel.Service, error) {
	var service serviceModel.Service
	if err := r.db.Where("slug = ?", slug).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// FindOrCreateByName resolves a service by its display name, lazily creating
// the catalog row with the given base price when it does not exist yet.
func (r *serviceRepository) FindOrCreateByName(name string, basePrice float64) (*serviceModel.Service, error) {
	var service serviceModel.Service
	err := r.db.Where("name = ?", name).First(&service).Error
	if err == nil {
		return &service, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	service = serviceModel.Service{
		Slug:  Slugify(name),
		Name:  name,
		Price: basePrice,
	}
	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// Slugify converts a display name into its URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
