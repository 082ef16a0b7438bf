package repository

import (
	"errors"

	"onboarding-backend/internal/apps/user/models"
	"onboarding-backend/internal/common/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	UpsertVerified(phone string) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	Save(user *models.User) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertVerified creates the user record for a phone number with placeholder
// profile fields, or marks the existing record verified. Phone is the unique
// key, so repeated verification never produces a second row.
func (r *userRepository) UpsertVerified(phone string) (*models.User, error) {
	name := models.PlaceholderName
	user := models.User{
		Phone:      phone,
		Name:       &name,
		District:   models.PlaceholderDistrict,
		State:      models.PlaceholderState,
		Pincode:    models.PlaceholderPincode,
		IsVerified: true,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_verified", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the conflict path returns the existing row, not the
	// placeholder values.
	return r.FindByPhone(phone)
}

// FindByPhone retrieves a user by exact phone number match
func (r *userRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Save persists all fields of an existing user, including cleared ones
func (r *userRepository) Save(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}
