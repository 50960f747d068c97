package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/investment_admin_core/internal/apperrors"
	"github.com/SscSPs/investment_admin_core/internal/core/domain"
	portssvc "github.com/SscSPs/investment_admin_core/internal/core/ports/services"
	"github.com/SscSPs/investment_admin_core/internal/dto"
	"github.com/SscSPs/investment_admin_core/internal/handlers"
	"github.com/SscSPs/investment_admin_core/internal/middleware"
	"github.com/SscSPs/investment_admin_core/internal/platform/config"
	"github.com/SscSPs/investment_admin_core/internal/utils"
)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) ApproveInvestment(ctx context.Context, investmentID string, actor domain.Actor) (*dto.DecisionResult, error) {
	args := m.Called(ctx, investmentID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DecisionResult), args.Error(1)
}

func (m *MockInvestmentService) RejectInvestment(ctx context.Context, investmentID string, reason string, actor domain.Actor) (*dto.DecisionResult, error) {
	args := m.Called(ctx, investmentID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DecisionResult), args.Error(1)
}

func (m *MockInvestmentService) GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) ListInvestmentTransactions(ctx context.Context, investmentID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, investmentID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Test Suite ---
type InvestmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockInvestmentService
	cfg         *config.Config
	apiKey      string
	admin       domain.Actor
}

func (suite *InvestmentHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.apiKey = "test-api-key"
	hash, err := utils.HashAPIKey(suite.apiKey)
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		IsProduction:     true,
		JWTSecret:        "test-secret-key-that-is-long-enough",
		JWTIssuer:        "investment-admin-test",
		APIKeyHash:       hash,
		APIKeyActorID:    "svc-backoffice",
		APIKeyActorLabel: "backoffice@internal",
		RateLimit:        "1000-M",
	}
	suite.admin = domain.Actor{ID: "admin-1", Label: "ops@example.com"}
}

func (suite *InvestmentHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.mockService = new(MockInvestmentService)

	services := &portssvc.ServiceContainer{Investment: suite.mockService}
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, suite.cfg, services, nil))
}

func (suite *InvestmentHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InvestmentHandlerTestSuite) token(actor domain.Actor) string {
	tok, err := utils.GenerateJWT(actor.ID, actor.Label, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return tok
}

func (suite *InvestmentHandlerTestSuite) do(method, url, body string, auth func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if auth != nil {
		auth(req)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InvestmentHandlerTestSuite) bearer(r *http.Request) {
	r.Header.Set("Authorization", "Bearer "+suite.token(suite.admin))
}

func (suite *InvestmentHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Test Cases ---

func (suite *InvestmentHandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *InvestmentHandlerTestSuite) TestApprove_Success() {
	expected := &dto.DecisionResult{InvestmentID: "inv-1", Status: domain.InvestmentActive, TransactionID: "txn-1"}
	suite.mockService.On("ApproveInvestment", mock.Anything, "inv-1", suite.admin).Return(expected, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/approve", "", suite.bearer)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DecisionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(*expected, got)
}

func (suite *InvestmentHandlerTestSuite) TestApprove_RequiresAuthentication() {
	w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/approve", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ApproveInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentHandlerTestSuite) TestApprove_WithAPIKeyActsAsServiceActor() {
	serviceActor := domain.Actor{ID: "svc-backoffice", Label: "backoffice@internal"}
	suite.mockService.On("ApproveInvestment", mock.Anything, "inv-1", serviceActor).
		Return(&dto.DecisionResult{InvestmentID: "inv-1", Status: domain.InvestmentActive, AlreadyProcessed: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/approve", "", func(r *http.Request) {
		r.Header.Set(middleware.APIKeyHeader, suite.apiKey)
	})
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *InvestmentHandlerTestSuite) TestApprove_WrongAPIKeyFallsBackToJWT() {
	w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/approve", "", func(r *http.Request) {
		r.Header.Set(middleware.APIKeyHeader, "nope")
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *InvestmentHandlerTestSuite) TestApprove_ErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "insufficient balance",
			err:        fmt.Errorf("%w: balance 50.00 is below 100.00", apperrors.ErrInsufficientBalance),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "insufficient wallet balance: balance 50.00 is below 100.00",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: investment inv-1", apperrors.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "resource not found: investment inv-1",
		},
		{
			name:       "not pending",
			err:        fmt.Errorf("%w: investment is cancelled", apperrors.ErrInvalidStateTransition),
			wantStatus: http.StatusConflict,
			wantMsg:    "invalid investment state transition: investment is cancelled",
		},
		{
			name:       "store unavailable",
			err:        apperrors.NewAppError(http.StatusServiceUnavailable, "Store unavailable", fmt.Errorf("dial tcp: refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Store unavailable",
		},
		{
			name:       "unexpected",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.On("ApproveInvestment", mock.Anything, "inv-1", suite.admin).Return(nil, tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/approve", "", suite.bearer)

			suite.Equal(tc.wantStatus, w.Code)
			suite.Equal(tc.wantMsg, suite.errorBody(w))
		})
	}
}

func (suite *InvestmentHandlerTestSuite) TestReject_Success() {
	expected := &dto.DecisionResult{InvestmentID: "inv-1", Status: domain.InvestmentCancelled, TransactionID: "txn-9"}
	suite.mockService.On("RejectInvestment", mock.Anything, "inv-1", "KYC incomplete", suite.admin).Return(expected, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/reject", `{"reason":"KYC incomplete"}`, suite.bearer)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.DecisionResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(*expected, got)
}

func (suite *InvestmentHandlerTestSuite) TestReject_InvalidBody() {
	for _, body := range []string{`{}`, `{"reason":"   "}`, `not json`} {
		suite.Run(body, func() {
			w := suite.do(http.MethodPost, "/api/v1/investments/inv-1/reject", body, suite.bearer)
			suite.Equal(http.StatusBadRequest, w.Code)
		})
	}
	suite.mockService.AssertNotCalled(suite.T(), "RejectInvestment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentHandlerTestSuite) TestGetInvestment() {
	amount := decimal.RequireFromString("250.50")
	inv := &domain.Investment{
		InvestmentID: "inv-1",
		UserID:       "user-1",
		ProjectID:    "proj-1",
		Amount:       decimal.NewNullDecimal(amount),
		Status:       domain.InvestmentPending,
		AuditFields:  domain.AuditFields{CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	suite.mockService.On("GetInvestment", mock.Anything, "inv-1").Return(inv, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/investments/inv-1", "", suite.bearer)

	suite.Equal(http.StatusOK, w.Code)
	var got map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("inv-1", got["investmentID"])
	suite.Equal("250.5", got["amount"])
	suite.Equal("pending", got["status"])
}

func (suite *InvestmentHandlerTestSuite) TestGetInvestment_NotFound() {
	suite.mockService.On("GetInvestment", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: investment missing", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/investments/missing", "", suite.bearer)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvestmentHandlerTestSuite) TestListTransactions() {
	next := "token-2"
	resp := &dto.ListTransactionsResponse{
		Transactions: []domain.Transaction{{TransactionID: "txn-1", InvestmentID: "inv-1"}},
		NextToken:    &next,
	}
	suite.mockService.On("ListInvestmentTransactions", mock.Anything, "inv-1",
		mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "token-1"
		}),
	).Return(resp, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/investments/inv-1/transactions?limit=5&nextToken=token-1", "", suite.bearer)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Transactions, 1)
	suite.Require().NotNil(got.NextToken)
	suite.Equal("token-2", *got.NextToken)
}

func (suite *InvestmentHandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/investments/inv-1/transactions?limit=500", "", suite.bearer)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestInvestmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentHandlerTestSuite))
}
