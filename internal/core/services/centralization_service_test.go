package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contalibre/contalibre_backend/internal/apperrors"
	"github.com/contalibre/contalibre_backend/internal/core/domain"
	portssvc "github.com/contalibre/contalibre_backend/internal/core/ports/services"
	"github.com/contalibre/contalibre_backend/internal/core/services"
	"github.com/contalibre/contalibre_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindCentralDefaults(ctx context.Context, companyID string) (*domain.CentralDefaults, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CentralDefaults), args.Error(1)
}

// MockEntityMappingRepository is a mock type for the EntityMappingRepositoryFacade interface
type MockEntityMappingRepository struct {
	mock.Mock
}

func (m *MockEntityMappingRepository) FindMappingsByTaxIDs(ctx context.Context, companyID string, taxIDs []string) (map[string]domain.EntityAccountMapping, error) {
	args := m.Called(ctx, companyID, taxIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.EntityAccountMapping), args.Error(1)
}

// MockEntryRepository is a mock type for the EntryRepositoryFacade interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, companyID string, entry domain.JournalEntry) (string, error) {
	args := m.Called(ctx, companyID, entry)
	return args.String(0), args.Error(1)
}

func (m *MockEntryRepository) SaveDetailLines(ctx context.Context, entryID string, lines []domain.JournalDetailLine) error {
	args := m.Called(ctx, entryID, lines)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) FindDetailLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetailLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalDetailLine), args.Error(1)
}

// --- Test Suite Setup ---

type CentralizationServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockMappingRepo *MockEntityMappingRepository
	mockEntryRepo   *MockEntryRepository
	service         portssvc.CentralizationSvcFacade
}

func (suite *CentralizationServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMappingRepo = new(MockEntityMappingRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewCentralizationService(
		suite.mockAccountRepo,
		suite.mockMappingRepo,
		suite.mockEntryRepo,
		domain.BatchLimits{MaxTransactions: 100},
		0, // no retries in unit tests
		time.Millisecond,
	)
}

func (suite *CentralizationServiceTestSuite) mappedFixture() {
	suite.mockMappingRepo.On("FindMappingsByTaxIDs", mock.Anything, "co-1", []string{"76543210-5"}).
		Return(map[string]domain.EntityAccountMapping{
			"76543210-5": {
				EntityTaxID: "76543210-5",
				Account:     domain.AccountRef{Code: "5.1.1.001", Name: "Merchandise"},
				IsActive:    true,
			},
		}, nil)
	suite.mockAccountRepo.On("ListActiveAccounts", mock.Anything, "co-1").
		Return([]domain.Account{{CompanyID: "co-1", Code: "5.1.1.001", Name: "Merchandise", IsActive: true}}, nil)
	suite.mockAccountRepo.On("FindCentralDefaults", mock.Anything, "co-1").
		Return(&testDefaults, nil)
}

func purchaseRequest(save bool) dto.CentralizationRequest {
	return dto.CentralizationRequest{
		Period:    "2025-03",
		Direction: "PURCHASE",
		Transactions: []dto.SourceTransactionRequest{
			{
				EntityTaxID:    "76.543.210-5",
				EntityName:     "Proveedor Uno",
				DocumentType:   "INVOICE",
				DocumentNumber: "F-1001",
				NetAmount:      decimal.NewFromInt(100000),
				TaxAmount:      decimal.NewFromInt(19000),
				TotalAmount:    decimal.NewFromInt(119000),
			},
		},
		Options: dto.CentralizationOptions{Save: save},
	}
}

// --- Test Cases ---

func (suite *CentralizationServiceTestSuite) TestCentralize_Success() {
	ctx := context.Background()
	suite.mappedFixture()

	resp, err := suite.service.Centralize(ctx, "co-1", purchaseRequest(false))

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Validation.IsValid)
	suite.Require().Len(resp.Batches, 1)
	suite.True(resp.Batches[0].Success)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("CENT-PURCHASE-2025-03-001", resp.Entries[0].ReferenceCode)
	// Dry run: nothing persisted.
	suite.Empty(resp.PersistedEntryIDs)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)

	// Entry date defaults to the last day of the period.
	suite.Equal(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), resp.Entries[0].EntryDate)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_BlockedByMissingMapping() {
	ctx := context.Background()
	suite.mockMappingRepo.On("FindMappingsByTaxIDs", mock.Anything, "co-1", []string{"76543210-5"}).
		Return(map[string]domain.EntityAccountMapping{}, nil)
	suite.mockAccountRepo.On("ListActiveAccounts", mock.Anything, "co-1").
		Return([]domain.Account{}, nil)
	suite.mockAccountRepo.On("FindCentralDefaults", mock.Anything, "co-1").
		Return(&testDefaults, nil)

	resp, err := suite.service.Centralize(ctx, "co-1", purchaseRequest(true))

	// Blocked is a result, not an error.
	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.False(resp.Validation.IsValid)
	suite.Equal([]string{"76543210-5"}, resp.Validation.MissingEntities)
	suite.Empty(resp.Entries)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_ForcedRunFallsBackToDefaults() {
	ctx := context.Background()
	suite.mockMappingRepo.On("FindMappingsByTaxIDs", mock.Anything, "co-1", []string{"76543210-5"}).
		Return(map[string]domain.EntityAccountMapping{}, nil)
	suite.mockAccountRepo.On("ListActiveAccounts", mock.Anything, "co-1").
		Return([]domain.Account{}, nil)
	suite.mockAccountRepo.On("FindCentralDefaults", mock.Anything, "co-1").
		Return(&testDefaults, nil)

	req := purchaseRequest(false)
	req.Options.Force = true

	resp, err := suite.service.Centralize(ctx, "co-1", req)

	suite.Require().NoError(err)
	suite.True(resp.Validation.IsValid)
	suite.NotEmpty(resp.Validation.Warnings)
	suite.Require().Len(resp.Entries, 1)
	// Unmapped entity landed on the default expense account.
	suite.Equal("5.1.9.999", resp.Entries[0].Lines[0].AccountCode)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_SavePersistsEntries() {
	ctx := context.Background()
	suite.mappedFixture()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, "co-1", mock.AnythingOfType("domain.JournalEntry")).
		Return("entry-1", nil).Once()
	suite.mockEntryRepo.On("SaveDetailLines", mock.Anything, "entry-1", mock.AnythingOfType("[]domain.JournalDetailLine")).
		Return(nil).Once()

	resp, err := suite.service.Centralize(ctx, "co-1", purchaseRequest(true))

	suite.Require().NoError(err)
	suite.Equal([]string{"entry-1"}, resp.PersistedEntryIDs)
	suite.Empty(resp.PersistErrors)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *CentralizationServiceTestSuite) TestCentralize_PersistFailureIsReportedNotFatal() {
	ctx := context.Background()
	suite.mappedFixture()
	suite.mockEntryRepo.On("SaveEntry", mock.Anything, "co-1", mock.AnythingOfType("domain.JournalEntry")).
		Return("", errors.New("connection reset")).Once()

	resp, err := suite.service.Centralize(ctx, "co-1", purchaseRequest(true))

	// The run still returns its synthesized entries; the failed write is
	// reported against the entry's reference code.
	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Empty(resp.PersistedEntryIDs)
	suite.Require().Len(resp.PersistErrors, 1)
	suite.Equal("CENT-PURCHASE-2025-03-001", resp.PersistErrors[0].ReferenceCode)
	suite.Contains(resp.PersistErrors[0].Error, "connection reset")
}

func (suite *CentralizationServiceTestSuite) TestCentralize_MissingDefaultsIsValidationError() {
	ctx := context.Background()
	suite.mockMappingRepo.On("FindMappingsByTaxIDs", mock.Anything, "co-1", mock.Anything).
		Return(map[string]domain.EntityAccountMapping{}, nil)
	suite.mockAccountRepo.On("ListActiveAccounts", mock.Anything, "co-1").
		Return([]domain.Account{}, nil)
	suite.mockAccountRepo.On("FindCentralDefaults", mock.Anything, "co-1").
		Return(nil, apperrors.ErrNotFound)

	resp, err := suite.service.Centralize(ctx, "co-1", purchaseRequest(false))

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(resp)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_BadPeriodFormat() {
	ctx := context.Background()

	req := purchaseRequest(false)
	req.Period = "March 2025"

	resp, err := suite.service.Centralize(ctx, "co-1", req)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(resp)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_EmptyCompanyID() {
	ctx := context.Background()

	resp, err := suite.service.Centralize(ctx, "", purchaseRequest(false))

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(resp)
}

func (suite *CentralizationServiceTestSuite) TestCentralize_PartitionsLargeRegister() {
	ctx := context.Background()
	suite.mappedFixture()

	req := purchaseRequest(false)
	txn := req.Transactions[0]
	req.Transactions = nil
	for i := 0; i < 150; i++ {
		req.Transactions = append(req.Transactions, txn)
	}

	resp, err := suite.service.Centralize(ctx, "co-1", req)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Batches, 2)
	suite.Equal(100, resp.Batches[0].TransactionCount)
	suite.Equal(50, resp.Batches[1].TransactionCount)
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("CENT-PURCHASE-2025-03-001", resp.Entries[0].ReferenceCode)
	suite.Equal("CENT-PURCHASE-2025-03-002", resp.Entries[1].ReferenceCode)
	suite.Equal(2, resp.Entries[0].BatchCount)
}

func (suite *CentralizationServiceTestSuite) TestGetEntry_Success() {
	ctx := context.Background()
	stored := &domain.JournalEntry{
		ReferenceCode: "CENT-PURCHASE-2025-03-001",
		Direction:     domain.Purchase,
		Period:        "2025-03",
	}
	lines := []domain.JournalDetailLine{
		{AccountCode: "5.1.1.001", Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
		{AccountCode: "2.1.1.001", Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
	}
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, "co-1", "entry-1").Return(stored, nil).Once()
	suite.mockEntryRepo.On("FindDetailLinesByEntryID", mock.Anything, "entry-1").Return(lines, nil).Once()

	resp, err := suite.service.GetEntry(ctx, "co-1", "entry-1")

	suite.Require().NoError(err)
	suite.Equal("entry-1", resp.EntryID)
	suite.Equal("CENT-PURCHASE-2025-03-001", resp.Entry.ReferenceCode)
	suite.Len(resp.Entry.Lines, 2)
}

func (suite *CentralizationServiceTestSuite) TestGetEntry_NotFound() {
	ctx := context.Background()
	suite.mockEntryRepo.On("FindEntryByID", mock.Anything, "co-1", "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetEntry(ctx, "co-1", "missing")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(resp)
}

func TestCentralizationService(t *testing.T) {
	suite.Run(t, new(CentralizationServiceTestSuite))
}
