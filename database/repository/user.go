package repository

import (
	userModel "car-service-booking/models/user"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a GORM-backed UserStore.
func NewUserRepository(db *gorm.DB) UserStore {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *userModel.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*userModel.User, error) {
	var user userModel.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*userModel.User, error) {
	var user userModel.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) AddRewardPoints(userID uint, points int) error {
	return r.db.Model(&userModel.User{}).
		Where("id = ?", userID).
		UpdateColumn("reward_points", gorm.Expr("reward_points + ?", points)).Error
}
