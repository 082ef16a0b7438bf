package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Placeholder values written at verification time, before the user reaches
// the location and personal-details steps.
const (
	PlaceholderName     = "New User"
	PlaceholderDistrict = "Unknown"
	PlaceholderState    = "Unknown"
	PlaceholderPincode  = "000000"
)

// User represents an onboarded user keyed by phone number
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Phone      string         `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Name       *string        `gorm:"size:255" json:"name"`
	Gender     *string        `gorm:"size:20" json:"gender"`
	Dob        *string        `gorm:"size:20" json:"dob"`
	Age        *int           `json:"age"`
	District   string         `gorm:"size:100;not null;default:'Unknown'" json:"district"`
	State      string         `gorm:"size:100;not null;default:'Unknown'" json:"state"`
	Pincode    string         `gorm:"size:10;not null;default:'000000'" json:"pincode"`
	IsVerified bool           `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook to generate UUID before creating record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SaveLocationRequest payload to save the location step
type SaveLocationRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	State       string `json:"state"`
	District    string `json:"district"`
	Pincode     string `json:"pincode"`
}

// SavePersonalDetailsRequest payload to save the personal-details step.
// Omitted optional fields clear the stored value rather than keeping it.
type SavePersonalDetailsRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Name        *string `json:"name"`
	Gender      *string `json:"gender"`
	Dob         *string `json:"dob"`
	Age         *int    `json:"age"`
}

// UserResponse represents the response payload for user operations
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Phone      string    `json:"phone"`
	Name       *string   `json:"name"`
	Gender     *string   `json:"gender"`
	Dob        *string   `json:"dob"`
	Age        *int      `json:"age"`
	District   string    `json:"district"`
	State      string    `json:"state"`
	Pincode    string    `json:"pincode"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToResponse converts User model to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Phone:      u.Phone,
		Name:       u.Name,
		Gender:     u.Gender,
		Dob:        u.Dob,
		Age:        u.Age,
		District:   u.District,
		State:      u.State,
		Pincode:    u.Pincode,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
