package handlers_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	portssvc "github.com/kmalkov/cbr_rates_app/internal/core/ports/services"
	"github.com/kmalkov/cbr_rates_app/internal/handlers"
	"github.com/kmalkov/cbr_rates_app/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SyncService ---
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) RunSync(ctx context.Context, date time.Time) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.SyncSvcFacade = (*MockSyncService)(nil)

// --- Test Suite ---
type SyncHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSyncService *MockSyncService
	jwtSecret       string
}

func (suite *SyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockSyncService = new(MockSyncService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterSyncRoutes(v1, suite.mockSyncService)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *SyncHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "rates-test",
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *SyncHandlerTestSuite) trigger(body string, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sync", reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_Success() {
	suite.mockSyncService.On("RunSync", mock.Anything, mock.MatchedBy(func(d time.Time) bool {
		return d.Year() == 2025 && d.Month() == time.March && d.Day() == 2
	})).Return(nil).Once()

	w := suite.trigger(`{"date":"2025-03-02"}`, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSyncService.AssertExpectations(suite.T())
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_DefaultsToToday() {
	suite.mockSyncService.On("RunSync", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	w := suite.trigger("", true)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_Unauthorized() {
	w := suite.trigger("", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSyncService.AssertNotCalled(suite.T(), "RunSync", mock.Anything, mock.Anything)
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_NetworkErrorMapsToBadGateway() {
	suite.mockSyncService.On("RunSync", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: feed responded with status 503", apperrors.ErrNetwork)).Once()

	w := suite.trigger("", true)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_ParseErrorMapsToUnprocessable() {
	suite.mockSyncService.On("RunSync", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: invalid feed document", apperrors.ErrParse)).Once()

	w := suite.trigger("", true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_PersistenceErrorMapsToInternal() {
	suite.mockSyncService.On("RunSync", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: failed to commit transaction", apperrors.ErrPersistence)).Once()

	w := suite.trigger("", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *SyncHandlerTestSuite) TestTriggerSync_BadDateRejected() {
	w := suite.trigger(`{"date":"03/02/2025"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSyncService.AssertNotCalled(suite.T(), "RunSync", mock.Anything, mock.Anything)
}

func TestSyncHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}
