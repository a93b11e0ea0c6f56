package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/opms-dev/opms_backend/internal/apperrors"
	"github.com/opms-dev/opms_backend/internal/core/domain"
	portssvc "github.com/opms-dev/opms_backend/internal/core/ports/services"
	"github.com/opms-dev/opms_backend/internal/core/services"
	"github.com/opms-dev/opms_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindChildrenByParentID(ctx context.Context, ownerID, parentID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListFoldersByStatus(ctx context.Context, ownerID, branch string, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, branch, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateFolderStatusIfPending(ctx context.Context, ownerID, folderID string, status domain.TransactionStatus, notes *string, actorID string, at time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, folderID, status, notes, actorID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SetArchived(ctx context.Context, ownerID, transactionID string, archived bool, actorID string, at time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, transactionID, archived, actorID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) ListArchived(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteArchivedPermanently(ctx context.Context, ownerID, transactionID string) (bool, error) {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Bool(0), args.Error(1)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionService
	ownerID  string
	branch   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
	suite.ownerID = uuid.NewString()
	suite.branch = "main-office"
}

func (suite *TransactionServiceTestSuite) pendingFolder() *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       suite.ownerID,
		Branch:        suite.branch,
		Name:          "Supplier August",
		CheckDate:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
	}
}

// --- CreateFolder ---

func (suite *TransactionServiceTestSuite) TestCreateFolder_Success() {
	ctx := context.Background()
	req := dto.CreateFolderRequest{
		Name:      "Supplier August",
		CheckDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Notes:     "monthly batch",
	}

	suite.mockRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Name == req.Name &&
			txn.OwnerID == suite.ownerID &&
			txn.Branch == suite.branch &&
			txn.ParentID == nil &&
			txn.Status == domain.StatusPending &&
			txn.CheckAmount.IsZero()
	})).Return(nil).Once()

	folder, err := suite.service.CreateFolder(ctx, suite.ownerID, suite.branch, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(folder)
	suite.Equal(domain.StatusPending, folder.Status)
	suite.NotEmpty(folder.TransactionID)
	suite.Equal(suite.ownerID, folder.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateFolder_MissingName() {
	ctx := context.Background()
	req := dto.CreateFolderRequest{CheckDate: time.Now()}

	folder, err := suite.service.CreateFolder(ctx, suite.ownerID, suite.branch, req)

	suite.Require().Error(err)
	suite.Nil(folder)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

// --- CreateChild ---

func (suite *TransactionServiceTestSuite) TestCreateChild_DerivesAmounts() {
	ctx := context.Background()
	folder := suite.pendingFolder()
	req := dto.CreateChildRequest{
		Name:        "Check 001",
		CheckNo:     "001",
		CheckAmount: dec("1000"),
		Deductions: []dto.DeductionInput{
			{Name: "EWT", Amount: dec("50")},
			{Name: "Freight", Amount: dec("25")},
		},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, folder.TransactionID).Return(folder, nil).Once()
	suite.mockRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ParentID != nil && *txn.ParentID == folder.TransactionID &&
			txn.CounteredCheck.Equal(dec("925")) &&
			txn.EWT.Equal(dec("50"))
	})).Return(nil).Once()

	child, err := suite.service.CreateChild(ctx, suite.ownerID, suite.branch, folder.TransactionID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(child)
	suite.True(child.CounteredCheck.Equal(dec("925")))
	suite.True(child.EWT.Equal(dec("50")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateChild_FolderNotFound() {
	ctx := context.Background()
	folderID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, folderID).Return(nil, apperrors.ErrNotFound).Once()

	child, err := suite.service.CreateChild(ctx, suite.ownerID, suite.branch, folderID, dto.CreateChildRequest{Name: "Check"})

	suite.Require().Error(err)
	suite.Nil(child)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestCreateChild_BranchMismatchLooksLikeNotFound() {
	ctx := context.Background()
	folder := suite.pendingFolder()

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, folder.TransactionID).Return(folder, nil).Once()

	child, err := suite.service.CreateChild(ctx, suite.ownerID, "other-branch", folder.TransactionID, dto.CreateChildRequest{Name: "Check"})

	suite.Require().Error(err)
	suite.Nil(child)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateChild_SettledFolderConflicts() {
	ctx := context.Background()
	folder := suite.pendingFolder()
	folder.Status = domain.StatusPaid

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, folder.TransactionID).Return(folder, nil).Once()

	child, err := suite.service.CreateChild(ctx, suite.ownerID, suite.branch, folder.TransactionID, dto.CreateChildRequest{Name: "Check"})

	suite.Require().Error(err)
	suite.Nil(child)
	suite.ErrorIs(err, apperrors.ErrAlreadyPaid)
}

func (suite *TransactionServiceTestSuite) TestCreateChild_NegativeDeduction() {
	ctx := context.Background()
	req := dto.CreateChildRequest{
		Name:        "Check 001",
		CheckAmount: dec("100"),
		Deductions:  []dto.DeductionInput{{Name: "EWT", Amount: dec("-5")}},
	}

	child, err := suite.service.CreateChild(ctx, suite.ownerID, suite.branch, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(child)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateChild ---

func (suite *TransactionServiceTestSuite) TestUpdateChild_RederivesAmounts() {
	ctx := context.Background()
	parentID := uuid.NewString()
	child := &domain.Transaction{
		TransactionID:  uuid.NewString(),
		OwnerID:        suite.ownerID,
		Branch:         suite.branch,
		ParentID:       &parentID,
		Name:           "Check 001",
		CheckNo:        "001",
		CheckAmount:    dec("1000"),
		CounteredCheck: dec("1000"),
		Status:         domain.StatusPending,
	}
	newDeductions := []dto.DeductionInput{{Name: "EWT", Amount: dec("100")}}
	req := dto.UpdateChildRequest{Deductions: &newDeductions}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, child.TransactionID).Return(child, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CounteredCheck.Equal(dec("900")) && txn.EWT.Equal(dec("100"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateChild(ctx, suite.ownerID, child.TransactionID, req)

	suite.Require().NoError(err)
	suite.True(updated.CounteredCheck.Equal(dec("900")))
	suite.True(updated.EWT.Equal(dec("100")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateFolder_NeverTouchesAmountsOrStatus() {
	ctx := context.Background()
	folder := suite.pendingFolder()
	folder.CheckAmount = dec("1500")
	folder.CounteredCheck = dec("1200")
	newName := "Supplier September"
	req := dto.UpdateFolderRequest{Name: &newName}

	suite.mockRepo.On("FindTransactionByID", ctx, suite.ownerID, folder.TransactionID).Return(folder, nil).Once()
	suite.mockRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Name == "Supplier September" &&
			txn.CheckAmount.Equal(dec("1500")) &&
			txn.CounteredCheck.Equal(dec("1200")) &&
			txn.Status == domain.StatusPending
	})).Return(nil).Once()

	updated, err := suite.service.UpdateFolder(ctx, suite.ownerID, folder.TransactionID, req)

	suite.Require().NoError(err)
	suite.Equal("Supplier September", updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListFoldersByStatus ---

func (suite *TransactionServiceTestSuite) TestListFoldersByStatus_DegradesToEmptyOnStoreError() {
	ctx := context.Background()

	suite.mockRepo.On("ListFoldersByStatus", ctx, suite.ownerID, suite.branch, domain.StatusPending).
		Return(nil, assert.AnError).Once()

	folders, err := suite.service.ListFoldersByStatus(ctx, suite.ownerID, suite.branch, domain.StatusPending)

	suite.Require().NoError(err)
	suite.NotNil(folders)
	suite.Empty(folders)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Archive lifecycle ---

func (suite *TransactionServiceTestSuite) TestArchiveThenRestore() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("SetArchived", ctx, suite.ownerID, transactionID, true, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()
	suite.mockRepo.On("SetArchived", ctx, suite.ownerID, transactionID, false, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(true, nil).Once()

	suite.Require().NoError(suite.service.ArchiveTransaction(ctx, suite.ownerID, transactionID))
	suite.Require().NoError(suite.service.RestoreTransaction(ctx, suite.ownerID, transactionID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestArchive_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("SetArchived", ctx, suite.ownerID, transactionID, true, suite.ownerID, mock.AnythingOfType("time.Time")).
		Return(false, nil).Once()

	err := suite.service.ArchiveTransaction(ctx, suite.ownerID, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestPurge_OnlyArchivedRowsMatch() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	// Repo refuses non-archived rows and reports nothing matched.
	suite.mockRepo.On("DeleteArchivedPermanently", ctx, suite.ownerID, transactionID).Return(false, nil).Once()

	err := suite.service.PurgeTransaction(ctx, suite.ownerID, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
