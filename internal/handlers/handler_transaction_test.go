package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/dto"
	"github.com/opms-dev/opms_backend/internal/handlers"
	"github.com/opms-dev/opms_backend/internal/platform/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateFolder(ctx context.Context, ownerID, branch string, req dto.CreateFolderRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, branch, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateChild(ctx context.Context, ownerID, branch, folderID string, req dto.CreateChildRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, branch, folderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateFolder(ctx context.Context, ownerID, folderID string, req dto.UpdateFolderRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, folderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateChild(ctx context.Context, ownerID, childID string, req dto.UpdateChildRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, childID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetFolder(ctx context.Context, ownerID, folderID string, includeChildren bool) (*domain.Transaction, []domain.Transaction, error) {
	args := m.Called(ctx, ownerID, folderID, includeChildren)
	var folder *domain.Transaction
	var children []domain.Transaction
	if args.Get(0) != nil {
		folder = args.Get(0).(*domain.Transaction)
	}
	if args.Get(1) != nil {
		children = args.Get(1).([]domain.Transaction)
	}
	return folder, children, args.Error(2)
}

func (m *MockTransactionService) ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, branch, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ArchiveTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) RestoreTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) PurgeTransaction(ctx context.Context, ownerID, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionService = (*MockTransactionService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) ComputeFolderTotals(ctx context.Context, ownerID, folderID string) (*domain.FolderTotals, error) {
	args := m.Called(ctx, ownerID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolderTotals), args.Error(1)
}

func (m *MockReconciliationService) MarkFolderPaid(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, folderID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockReconciliationService) DeclineFolder(ctx context.Context, ownerID, folderID string, notes *string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, folderID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.ReconciliationService = (*MockReconciliationService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalyticsSummary(ctx context.Context, ownerID, branch string, year, month int) (*domain.AnalyticsSummary, error) {
	args := m.Called(ctx, ownerID, branch, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSummary), args.Error(1)
}

func (m *MockAnalyticsService) GetWeeklyBillingSummary(ctx context.Context, ownerID, branch string, year, week int) (*domain.WeeklyBillingSummary, error) {
	args := m.Called(ctx, ownerID, branch, year, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyBillingSummary), args.Error(1)
}

var _ portssvc.AnalyticsService = (*MockAnalyticsService)(nil)

// --- Mock LoanService ---
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) AddLoan(ctx context.Context, ownerID, branch string, req dto.AddLoanRequest) (*domain.Loan, error) {
	args := m.Called(ctx, ownerID, branch, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) ListLoans(ctx context.Context, ownerID, branch string) ([]domain.Loan, error) {
	args := m.Called(ctx, ownerID, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

var _ portssvc.LoanService = (*MockLoanService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockTxn   *MockTransactionService
	mockRecon *MockReconciliationService
	jwtSecret string
	userID    string
	branch    string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
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

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.branch = "main-office"

	suite.mockTxn = new(MockTransactionService)
	suite.mockRecon = new(MockReconciliationService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	services := &portssvc.ServiceContainer{
		Transaction:    suite.mockTxn,
		Reconciliation: suite.mockRecon,
		Analytics:      new(MockAnalyticsService),
		Loan:           new(MockLoanService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateFolder_Created() {
	folder := &domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       suite.userID,
		Branch:        suite.branch,
		Name:          "Supplier August",
		Status:        domain.StatusPending,
	}

	suite.mockTxn.On("CreateFolder", mock.Anything, suite.userID, suite.branch,
		mock.MatchedBy(func(req dto.CreateFolderRequest) bool {
			return req.Name == "Supplier August"
		})).Return(folder, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions", gin.H{
		"name":      "Supplier August",
		"checkDate": "2025-08-01T00:00:00Z",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(folder.TransactionID, resp.TransactionID)
	suite.Equal(string(domain.StatusPending), resp.Status)
	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateFolder_MissingNameIsBadRequest() {
	w := suite.doRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions", gin.H{
		"checkDate": "2025-08-01T00:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxn.AssertNotCalled(suite.T(), "CreateFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateFolder_NoTokenIsUnauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListFolders_RequiresStatus() {
	w := suite.doRequest(http.MethodGet, "/api/v1/branches/"+suite.branch+"/transactions", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListFolders_OK() {
	folders := []domain.Transaction{
		{TransactionID: uuid.NewString(), Branch: suite.branch, Status: domain.StatusPending},
	}
	suite.mockTxn.On("ListFoldersByStatus", mock.Anything, suite.userID, suite.branch, domain.StatusPending).
		Return(folders, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/branches/"+suite.branch+"/transactions?status=pending", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mockTxn.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetFolder_NotFound() {
	folderID := uuid.NewString()
	suite.mockTxn.On("GetFolder", mock.Anything, suite.userID, folderID, false).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/branches/"+suite.branch+"/transactions/"+folderID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestPayFolder_ConflictWhenAlreadySettled() {
	folderID := uuid.NewString()
	suite.mockRecon.On("MarkFolderPaid", mock.Anything, suite.userID, folderID, (*string)(nil)).
		Return(nil, apperrors.NewAppError(409, "folder is already PAID", apperrors.ErrAlreadyPaid)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions/"+folderID+"/pay", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockRecon.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestPayFolder_ConflictWhenIncomplete() {
	folderID := uuid.NewString()
	suite.mockRecon.On("MarkFolderPaid", mock.Anything, suite.userID, folderID, (*string)(nil)).
		Return(nil, apperrors.NewAppError(409, "child check is incomplete", apperrors.ErrIncompleteChildren)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions/"+folderID+"/pay", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestPayFolder_OK() {
	folderID := uuid.NewString()
	now := time.Now().UTC()
	paid := &domain.Transaction{
		TransactionID: folderID,
		Branch:        suite.branch,
		Status:        domain.StatusPaid,
		PaidAt:        &now,
	}
	notes := "reconciled"
	suite.mockRecon.On("MarkFolderPaid", mock.Anything, suite.userID, folderID, &notes).
		Return(paid, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/branches/"+suite.branch+"/transactions/"+folderID+"/pay",
		gin.H{"notes": "reconciled"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.StatusPaid), resp.Status)
	suite.Require().NotNil(resp.PaidAt)
}

func (suite *TransactionHandlerTestSuite) TestGetFolderTotals_OK() {
	folderID := uuid.NewString()
	totals := &domain.FolderTotals{
		CheckAmount:      decimal.RequireFromString("1000"),
		CounteredTotal:   decimal.RequireFromString("950"),
		EWTTotal:         decimal.RequireFromString("20"),
		RemainingBalance: decimal.RequireFromString("50"),
	}
	suite.mockRecon.On("ComputeFolderTotals", mock.Anything, suite.userID, folderID).
		Return(totals, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/branches/"+suite.branch+"/transactions/"+folderID+"/totals", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FolderTotalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.RemainingBalance.Equal(decimal.RequireFromString("50")))
}

func (suite *TransactionHandlerTestSuite) TestArchiveTransaction_OK() {
	transactionID := uuid.NewString()
	suite.mockTxn.On("ArchiveTransaction", mock.Anything, suite.userID, transactionID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/branches/"+suite.branch+"/transactions/"+transactionID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTxn.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
