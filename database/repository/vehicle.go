package repository

import (
	vehicleModel "car-service-booking/models/vehicle"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository returns a GORM-backed VehicleStore.
func NewVehicleRepository(db *gorm.DB) VehicleStore {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(vehicle *vehicleModel.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *vehicleRepository) FindByID(id uint) (*vehicleModel.Vehicle, error) {
	var vehicle vehicleModel.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) ListByUser(userID uint) ([]vehicleModel.Vehicle, error) {
	var vehicles []vehicleModel.Vehicle
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(vehicle *vehicleModel.Vehicle) error {
	return r.db.Save(vehicle).Error
}

func (r *vehicleRepository) Delete(id uint) error {
	return r.db.Delete(&vehicleModel.Vehicle{}, id).Error
}
