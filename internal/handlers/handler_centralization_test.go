package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/contalibre/contalibre_backend/internal/core/ports/services"
	"github.com/contalibre/contalibre_backend/internal/dto"
	"github.com/contalibre/contalibre_backend/internal/handlers"
	"github.com/contalibre/contalibre_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
)

// --- Mock CentralizationService ---
type MockCentralizationService struct {
	mock.Mock
}

func (m *MockCentralizationService) Centralize(ctx context.Context, companyID string, req dto.CentralizationRequest) (*dto.CentralizationResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CentralizationResponse), args.Error(1)
}

func (m *MockCentralizationService) GetEntry(ctx context.Context, companyID string, entryID string) (*dto.GetEntryResponse, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetEntryResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CentralizationSvcFacade = (*MockCentralizationService)(nil)

// --- Test Suite Setup ---

type CentralizationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCentralizationService
	jwtSecret   string
}

func (suite *CentralizationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *CentralizationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockCentralizationService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger wiring in tests
		RateLimit:    "1000-M",
	}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	suite.Require().NoError(err)
	limiterInstance := limiter.New(limitermemory.NewStore(), rate)

	services := &portssvc.ServiceContainer{Centralization: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, services, limiterInstance)
}

func (suite *CentralizationHandlerTestSuite) postCentralization(body []byte, authorized bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/companies/co-1/centralizations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validRequestBody() []byte {
	body, _ := json.Marshal(dto.CentralizationRequest{
		Period:    "2025-03",
		Direction: "PURCHASE",
		Transactions: []dto.SourceTransactionRequest{
			{
				EntityTaxID:    "76543210-5",
				DocumentType:   "INVOICE",
				DocumentNumber: "F-1001",
				NetAmount:      decimal.NewFromInt(100000),
				TaxAmount:      decimal.NewFromInt(19000),
				TotalAmount:    decimal.NewFromInt(119000),
			},
		},
	})
	return body
}

// --- Test Cases ---

func (suite *CentralizationHandlerTestSuite) TestCentralize_Success() {
	resp := &dto.CentralizationResponse{
		Validation: domain.ValidationResult{IsValid: true},
		Batches:    []dto.BatchSummary{{BatchNumber: 1, Success: true, TransactionCount: 1}},
		Entries:    []dto.JournalEntryResponse{{ReferenceCode: "CENT-PURCHASE-2025-03-001"}},
	}
	suite.mockService.On("Centralize", mock.Anything, "co-1", mock.AnythingOfType("dto.CentralizationRequest")).
		Return(resp, nil).Once()

	w := suite.postCentralization(validRequestBody(), true)

	suite.Equal(http.StatusOK, w.Code)
	var decoded dto.CentralizationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	suite.True(decoded.Validation.IsValid)
	suite.Len(decoded.Entries, 1)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CentralizationHandlerTestSuite) TestCentralize_BlockedReturns422() {
	resp := &dto.CentralizationResponse{
		Validation: domain.ValidationResult{
			IsValid:         false,
			Errors:          []string{"entity 99999999-9 has no account mapping"},
			MissingEntities: []string{"99999999-9"},
		},
	}
	suite.mockService.On("Centralize", mock.Anything, "co-1", mock.Anything).
		Return(resp, nil).Once()

	w := suite.postCentralization(validRequestBody(), true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var decoded dto.CentralizationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	suite.Equal([]string{"99999999-9"}, decoded.Validation.MissingEntities)
}

func (suite *CentralizationHandlerTestSuite) TestCentralize_ValidationErrorReturns400() {
	suite.mockService.On("Centralize", mock.Anything, "co-1", mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.postCentralization(validRequestBody(), true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CentralizationHandlerTestSuite) TestCentralize_MalformedBodyReturns400() {
	w := suite.postCentralization([]byte(`{"direction":"SIDEWAYS"}`), true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Centralize", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CentralizationHandlerTestSuite) TestCentralize_MissingTokenReturns401() {
	w := suite.postCentralization(validRequestBody(), false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Centralize", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CentralizationHandlerTestSuite) TestGetEntry_Success() {
	resp := &dto.GetEntryResponse{
		EntryID: "entry-1",
		Entry:   dto.JournalEntryResponse{ReferenceCode: "CENT-PURCHASE-2025-03-001"},
	}
	suite.mockService.On("GetEntry", mock.Anything, "co-1", "entry-1").Return(resp, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/companies/co-1/entries/entry-1", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var decoded dto.GetEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	suite.Equal("entry-1", decoded.EntryID)
}

func (suite *CentralizationHandlerTestSuite) TestGetEntry_NotFoundReturns404() {
	suite.mockService.On("GetEntry", mock.Anything, "co-1", "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/companies/co-1/entries/missing", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestCentralizationHandler(t *testing.T) {
	suite.Run(t, new(CentralizationHandlerTestSuite))
}
