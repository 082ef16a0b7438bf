package service

import (
	"errors"
	"strings"

	"onboarding-backend/internal/apps/user/models"
	"onboarding-backend/internal/apps/user/repository"
	"onboarding-backend/internal/common/apperrors"

	"gorm.io/gorm"
)

// UserService defines the interface for user profile business logic
type UserService interface {
	SaveLocation(req models.SaveLocationRequest) (*models.UserResponse, error)
	SavePersonalDetails(req models.SavePersonalDetailsRequest) (*models.UserResponse, error)
	GetUserByPhone(phone string) (*models.UserResponse, error)
}

// userService implements UserService
type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// SaveLocation updates the location fields of the user verified for the
// given phone number
func (s *userService) SaveLocation(req models.SaveLocationRequest) (*models.UserResponse, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	state := strings.TrimSpace(req.State)
	district := strings.TrimSpace(req.District)
	pincode := strings.TrimSpace(req.Pincode)

	if phone == "" || state == "" || district == "" || pincode == "" {
		return nil, apperrors.Validation("Phone number, state, district, and pincode are required")
	}

	user, err := s.findByPhone(phone)
	if err != nil {
		return nil, err
	}

	user.State = state
	user.District = district
	user.Pincode = pincode

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// SavePersonalDetails replaces the optional profile fields of the user with
// the supplied values. Omitted fields are cleared, not left unchanged.
func (s *userService) SavePersonalDetails(req models.SavePersonalDetailsRequest) (*models.UserResponse, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return nil, apperrors.Validation("Phone number is required")
	}

	user, err := s.findByPhone(phone)
	if err != nil {
		return nil, err
	}

	user.Name = trimmedOrNil(req.Name)
	user.Gender = trimmedOrNil(req.Gender)
	user.Dob = trimmedOrNil(req.Dob)
	// A zero age counts as absent, like the blank strings above.
	user.Age = nil
	if req.Age != nil && *req.Age != 0 {
		user.Age = req.Age
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// GetUserByPhone retrieves a user profile by phone number
func (s *userService) GetUserByPhone(phone string) (*models.UserResponse, error) {
	user, err := s.findByPhone(strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) findByPhone(phone string) (*models.User, error) {
	user, err := s.repo.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// trimmedOrNil trims the value and treats empty strings as absent
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
