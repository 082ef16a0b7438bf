package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"onboarding-backend/internal/apps/otp/models"
	usermodels "onboarding-backend/internal/apps/user/models"
	"onboarding-backend/internal/common/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOTPService struct {
	mock.Mock
}

func (m *MockOTPService) SendOTP(req models.SendOTPRequest) (*models.SendOTPResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SendOTPResponse), args.Error(1)
}

func (m *MockOTPService) VerifyOTP(req models.VerifyOTPRequest) (*usermodels.UserResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usermodels.UserResponse), args.Error(1)
}

func setupRouter(svc *MockOTPService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterOTPRoutes(router.Group(""), NewOTPHandler(svc))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestOTPHandler_SendOTP(t *testing.T) {
	t.Run("success returns the issued code and session token", func(t *testing.T) {
		svc := new(MockOTPService)
		token := uuid.New()
		svc.On("SendOTP", models.SendOTPRequest{PhoneNumber: "9999999999"}).
			Return(&models.SendOTPResponse{Otp: "4321", SessionToken: token}, nil).Once()

		w, resp := doJSON(t, setupRouter(svc), "/send-otp", `{"phoneNumber":"9999999999"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "4321", resp["otp"])
		assert.Equal(t, token.String(), resp["sessionToken"])
		svc.AssertExpectations(t)
	})

	t.Run("empty phone number returns 400", func(t *testing.T) {
		svc := new(MockOTPService)
		svc.On("SendOTP", mock.Anything).
			Return(nil, apperrors.Validation("Phone number is required")).Once()

		w, resp := doJSON(t, setupRouter(svc), "/send-otp", `{"phoneNumber":""}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Phone number is required", resp["error"])
	})

	t.Run("dispatch failure returns 500 with a generic message", func(t *testing.T) {
		svc := new(MockOTPService)
		svc.On("SendOTP", mock.Anything).
			Return(nil, &apperrors.DeliveryError{Err: assert.AnError}).Once()

		w, resp := doJSON(t, setupRouter(svc), "/send-otp", `{"phoneNumber":"9999999999"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Failed to send OTP", resp["error"])
		assert.NotContains(t, resp["error"], assert.AnError.Error())
	})
}

func TestOTPHandler_VerifyOTP(t *testing.T) {
	t.Run("match returns the verified user", func(t *testing.T) {
		svc := new(MockOTPService)
		user := &usermodels.UserResponse{ID: uuid.New(), Phone: "9999999999", IsVerified: true}
		svc.On("VerifyOTP", models.VerifyOTPRequest{PhoneNumber: "9999999999", UserOTP: "4321"}).
			Return(user, nil).Once()

		w, resp := doJSON(t, setupRouter(svc), "/verify-otp", `{"phoneNumber":"9999999999","userOTP":"4321"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, resp["success"])
		got := resp["user"].(map[string]interface{})
		assert.Equal(t, "9999999999", got["phone"])
		assert.Equal(t, true, got["isVerified"])
	})

	t.Run("no match returns 401", func(t *testing.T) {
		svc := new(MockOTPService)
		svc.On("VerifyOTP", mock.Anything).Return(nil, apperrors.ErrInvalidOTP).Once()

		w, resp := doJSON(t, setupRouter(svc), "/verify-otp", `{"phoneNumber":"9999999999","userOTP":"0000"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid OTP or phone number", resp["error"])
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		svc := new(MockOTPService)
		svc.On("VerifyOTP", mock.Anything).
			Return(nil, apperrors.Validation("Phone number and OTP are required")).Once()

		w, _ := doJSON(t, setupRouter(svc), "/verify-otp", `{"phoneNumber":"9999999999"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
