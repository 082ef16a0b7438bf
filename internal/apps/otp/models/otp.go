package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Delivery states for an issued OTP. A record starts pending, moves to sent
// once the gateway accepts it, and to failed after the dispatcher gives up.
const (
	DeliveryPending = "pending"
	DeliverySent    = "sent"
	DeliveryFailed  = "failed"
)

// OtpRecord represents a one-time passcode issued to a phone number.
// Phone numbers are stored as submitted (trimmed only); multiple records per
// phone number are allowed and records are never expired or deleted.
type OtpRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PhoneNumber      string    `gorm:"size:20;not null;index" json:"phoneNumber"`
	Otp              string    `gorm:"size:6;not null" json:"otp"`
	SessionToken     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	DeliveryStatus   string    `gorm:"size:10;not null;default:'pending'" json:"-"`
	DeliveryAttempts int       `gorm:"not null;default:0" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName sets the table name to 'otps'
func (OtpRecord) TableName() string { return "otps" }

// BeforeCreate hook to generate UUIDs before creating record
func (o *OtpRecord) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.SessionToken == uuid.Nil {
		o.SessionToken = uuid.New()
	}
	return nil
}

// SendOTPRequest payload to issue an OTP to a phone number
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// SendOTPResponse carries the issued code and the opaque token the front
// end uses to reach the verification step without putting the phone number
// in a shareable URL.
type SendOTPResponse struct {
	Otp          string    `json:"otp"`
	SessionToken uuid.UUID `json:"sessionToken"`
}

// VerifyOTPRequest payload to verify an issued OTP. Either phoneNumber or
// sessionToken identifies the recipient.
type VerifyOTPRequest struct {
	PhoneNumber  string `json:"phoneNumber"`
	SessionToken string `json:"sessionToken"`
	UserOTP      string `json:"userOTP"`
}
