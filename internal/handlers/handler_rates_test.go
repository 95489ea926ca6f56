package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	portssvc "github.com/kmalkov/cbr_rates_app/internal/core/ports/services"
	"github.com/kmalkov/cbr_rates_app/internal/dto"
	"github.com/kmalkov/cbr_rates_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateService) GetRateByNumCode(ctx context.Context, numCode string) (*domain.Rate, error) {
	args := m.Called(ctx, numCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) GetRateByCharCode(ctx context.Context, charCode string) (*domain.Rate, error) {
	args := m.Called(ctx, charCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockRateService *MockRateService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterCustomValidators()

	suite.router = gin.New()
	suite.mockRateService = new(MockRateService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRateRoutes(v1, suite.mockRateService)
}

func sampleRate() *domain.Rate {
	return &domain.Rate{
		ID:        "R01235",
		NumCode:   "840",
		CharCode:  "USD",
		Nominal:   1,
		Name:      "Доллар США",
		Value:     decimal.RequireFromString("75.5"),
		VUnitRate: decimal.RequireFromString("75.5"),
		Date:      time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *RateHandlerTestSuite) serve(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RateHandlerTestSuite) TestListRates_Success() {
	suite.mockRateService.On("ListRates", mock.Anything).
		Return([]domain.Rate{*sampleRate()}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("R01235", body[0].ID)
	suite.Equal("2025-03-02", body[0].Date)
}

func (suite *RateHandlerTestSuite) TestGetRateByCharCode_Success() {
	suite.mockRateService.On("GetRateByCharCode", mock.Anything, "usd").
		Return(sampleRate(), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/char/usd")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.CharCode)
}

func (suite *RateHandlerTestSuite) TestGetRateByCharCode_BadLengthRejectedBeforeService() {
	for _, code := range []string{"us", "usdx"} {
		w := suite.serve(http.MethodGet, "/api/v1/rates/char/"+code)
		suite.Equal(http.StatusBadRequest, w.Code, "code %q", code)
	}
	suite.mockRateService.AssertNotCalled(suite.T(), "GetRateByCharCode", mock.Anything, mock.Anything)
}

func (suite *RateHandlerTestSuite) TestGetRateByCharCode_NotFound() {
	suite.mockRateService.On("GetRateByCharCode", mock.Anything, "KZT").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/char/KZT")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RateHandlerTestSuite) TestGetRateByNumCode_Success() {
	suite.mockRateService.On("GetRateByNumCode", mock.Anything, "840").
		Return(sampleRate(), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/num/840")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RateHandlerTestSuite) TestGetRateByNumCode_NotFound() {
	suite.mockRateService.On("GetRateByNumCode", mock.Anything, "999").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates/num/999")

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
