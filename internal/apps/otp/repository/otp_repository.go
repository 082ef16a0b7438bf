package repository

import (
	"onboarding-backend/internal/apps/otp/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPRepository defines data operations for issued OTPs
type OTPRepository interface {
	Create(otp *models.OtpRecord) error
	FindByPhoneAndCode(phoneNumber, code string) (*models.OtpRecord, error)
	FindBySessionToken(token uuid.UUID) (*models.OtpRecord, error)
	FindPendingDeliveries(maxAttempts, limit int) ([]models.OtpRecord, error)
	MarkDelivery(id uuid.UUID, status string, attempts int) error
}

// otpRepository implements OTPRepository
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates an instance of OTPRepository
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

// Create inserts a new OTP record. Records are append-only: issuing twice
// for the same phone number yields two rows.
func (r *otpRepository) Create(otp *models.OtpRecord) error {
	return r.db.Create(otp).Error
}

// FindByPhoneAndCode retrieves an OTP by exact phone number and code match.
// No ordering guarantee among multiple matching records and no expiry check.
func (r *otpRepository) FindByPhoneAndCode(phoneNumber, code string) (*models.OtpRecord, error) {
	var otp models.OtpRecord
	if err := r.db.Where("phone_number = ? AND otp = ?", phoneNumber, code).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// FindBySessionToken retrieves the OTP record carrying the given token
func (r *otpRepository) FindBySessionToken(token uuid.UUID) (*models.OtpRecord, error) {
	var otp models.OtpRecord
	if err := r.db.Where("session_token = ?", token).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// FindPendingDeliveries retrieves records still awaiting SMS delivery with
// fewer than maxAttempts dispatch attempts, oldest first
func (r *otpRepository) FindPendingDeliveries(maxAttempts, limit int) ([]models.OtpRecord, error) {
	var otps []models.OtpRecord
	err := r.db.
		Where("delivery_status = ? AND delivery_attempts < ?", models.DeliveryPending, maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&otps).Error
	if err != nil {
		return nil, err
	}
	return otps, nil
}

// MarkDelivery updates the delivery state of a record after a dispatch attempt
func (r *otpRepository) MarkDelivery(id uuid.UUID, status string, attempts int) error {
	return r.db.Model(&models.OtpRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"delivery_status":   status,
			"delivery_attempts": attempts,
		}).Error
}
