package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"onboarding-backend/internal/apps/otp/models"
	"onboarding-backend/internal/apps/otp/repository"
	usermodels "onboarding-backend/internal/apps/user/models"
	userrepository "onboarding-backend/internal/apps/user/repository"
	"onboarding-backend/internal/common/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPService defines business logic for OTP issuance and verification
type OTPService interface {
	SendOTP(req models.SendOTPRequest) (*models.SendOTPResponse, error)
	VerifyOTP(req models.VerifyOTPRequest) (*usermodels.UserResponse, error)
}

// otpService implements OTPService
type otpService struct {
	repo       repository.OTPRepository
	users      userrepository.UserRepository
	provider   SMSProvider
	fromNumber string
}

// NewOTPService creates a new instance of OTPService
func NewOTPService(repo repository.OTPRepository, users userrepository.UserRepository, provider SMSProvider, fromNumber string) OTPService {
	return &otpService{
		repo:       repo,
		users:      users,
		provider:   provider,
		fromNumber: fromNumber,
	}
}

// generateOTP generates a random code in the 1000-9999 range.
// The range is carried over from the product as launched; whether codes
// should be 6 digits is an open product question.
func generateOTP() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

// SendOTP generates a code, persists it and dispatches it over SMS.
// The record is written before dispatch and is not rolled back if dispatch
// fails; a failed dispatch leaves it pending for the background dispatcher.
func (s *otpService) SendOTP(req models.SendOTPRequest) (*models.SendOTPResponse, error) {
	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		return nil, apperrors.Validation("Phone number is required")
	}

	otp := &models.OtpRecord{
		PhoneNumber:    phone,
		Otp:            generateOTP(),
		DeliveryStatus: models.DeliveryPending,
	}
	if err := s.repo.Create(otp); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your OTP is %s", otp.Otp)
	if err := s.provider.Send(body, s.fromNumber, phone); err != nil {
		// Count the failed attempt so the dispatcher's cap spans both paths.
		if markErr := s.repo.MarkDelivery(otp.ID, models.DeliveryPending, 1); markErr != nil {
			log.Printf("[OTP Service] Failed to record attempt for %s: %v", otp.ID, markErr)
		}
		return nil, &apperrors.DeliveryError{Err: err}
	}

	if err := s.repo.MarkDelivery(otp.ID, models.DeliverySent, 1); err != nil {
		// Delivery already happened; the dispatcher may resend once.
		log.Printf("[OTP Service] Failed to mark delivery for %s: %v", otp.ID, err)
	}

	return &models.SendOTPResponse{
		Otp:          otp.Otp,
		SessionToken: otp.SessionToken,
	}, nil
}

// VerifyOTP matches the supplied code against issued records and marks the
// phone number's user as verified, creating the user record if needed
func (s *otpService) VerifyOTP(req models.VerifyOTPRequest) (*usermodels.UserResponse, error) {
	code := strings.TrimSpace(req.UserOTP)
	phone := strings.TrimSpace(req.PhoneNumber)
	token := strings.TrimSpace(req.SessionToken)

	if code == "" || (phone == "" && token == "") {
		return nil, apperrors.Validation("Phone number and OTP are required")
	}

	if phone == "" {
		resolved, err := s.resolvePhone(token)
		if err != nil {
			return nil, err
		}
		phone = resolved
	}

	if _, err := s.repo.FindByPhoneAndCode(phone, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidOTP
		}
		return nil, err
	}

	user, err := s.users.UpsertVerified(phone)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// resolvePhone maps a session token back to the phone number it was issued
// for. Unknown tokens are indistinguishable from a failed match.
func (s *otpService) resolvePhone(token string) (string, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return "", apperrors.ErrInvalidOTP
	}
	otp, err := s.repo.FindBySessionToken(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidOTP
		}
		return "", err
	}
	return otp.PhoneNumber, nil
}
