package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryWithTx = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return sales, token, args.Error(2)
}

func (m *MockSaleRepository) InsertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, items []domain.SaleItem) error {
	args := m.Called(ctx, tx, sale, items)
	return args.Error(0)
}

func (m *MockSaleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockSaleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ComboExpanderService ---
type MockComboExpanderService struct {
	mock.Mock
}

var _ portssvc.ComboExpanderSvc = (*MockComboExpanderService)(nil)

func (m *MockComboExpanderService) Expand(ctx context.Context, items []domain.SaleItem) ([]domain.StockDelta, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockDelta), args.Error(1)
}

// --- Mock StockLedgerService ---
type MockStockLedgerService struct {
	mock.Mock
}

var _ portssvc.StockLedgerSvc = (*MockStockLedgerService)(nil)

func (m *MockStockLedgerService) ApplyDeltas(ctx context.Context, tx pgx.Tx, deltas []domain.StockDelta, movementType domain.StockMovementType, referenceID *string, userID string) error {
	args := m.Called(ctx, tx, deltas, movementType, referenceID, userID)
	return args.Error(0)
}

func (m *MockStockLedgerService) CheckAvailability(ctx context.Context, deltas []domain.StockDelta) error {
	args := m.Called(ctx, deltas)
	return args.Error(0)
}

func (m *MockStockLedgerService) Adjust(ctx context.Context, productID string, quantity decimal.Decimal, reason string, allowNegative bool, userID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, productID, quantity, reason, allowNegative, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockLedgerService) RecordIntake(ctx context.Context, productID string, quantity decimal.Decimal, supplierID *string, userID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, productID, quantity, supplierID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockLedgerService) RecordReturn(ctx context.Context, productID string, quantity decimal.Decimal, saleID *string, userID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, productID, quantity, saleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockLedgerService) ListMovementsByProduct(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	args := m.Called(ctx, productID, limit, nextToken)
	var movements []domain.StockMovement
	if args.Get(0) != nil {
		movements = args.Get(0).([]domain.StockMovement)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return movements, token, args.Error(2)
}

// --- Mock CashRegisterService ---
type MockRegisterService struct {
	mock.Mock
}

var _ portssvc.CashRegisterSvcFacade = (*MockRegisterService)(nil)

func (m *MockRegisterService) OpenRegister(ctx context.Context, openingAmount decimal.Decimal, userID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, openingAmount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) PostMovement(ctx context.Context, registerID string, movementType domain.CashMovementType, amount decimal.Decimal, category string, userID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, registerID, movementType, amount, category, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockRegisterService) CloseRegister(ctx context.Context, registerID string, countedAmount decimal.Decimal, userID string) (*domain.ClosingReport, error) {
	args := m.Called(ctx, registerID, countedAmount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosingReport), args.Error(1)
}

func (m *MockRegisterService) FindOpenRegister(ctx context.Context) (*domain.CashRegister, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) GetRegister(ctx context.Context, registerID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) ListMovements(ctx context.Context, registerID string) ([]domain.CashMovement, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashMovement), args.Error(1)
}

func (m *MockRegisterService) FindOpenRegisterInTx(ctx context.Context, tx pgx.Tx) (*domain.CashRegister, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockRegisterService) PostSaleIncomeInTx(ctx context.Context, tx pgx.Tx, registerID string, amount decimal.Decimal, saleID string, userID string) error {
	args := m.Called(ctx, tx, registerID, amount, saleID, userID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockExpander    *MockComboExpanderService
	mockStockLedger *MockStockLedgerService
	mockRegisterSvc *MockRegisterService
	testUserID      string
	beerID          string
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockExpander = new(MockComboExpanderService)
	suite.mockStockLedger = new(MockStockLedgerService)
	suite.mockRegisterSvc = new(MockRegisterService)
	suite.testUserID = uuid.NewString()
	suite.beerID = uuid.NewString()
}

func (suite *SaleServiceTestSuite) newService(caps services.Capabilities, opts services.SaleCommitOptions) portssvc.SaleSvcFacade {
	return services.NewSaleService(suite.mockSaleRepo, suite.mockExpander, suite.mockStockLedger, suite.mockRegisterSvc, caps, opts)
}

func (suite *SaleServiceTestSuite) defaultService() portssvc.SaleSvcFacade {
	return suite.newService(
		services.Capabilities{CashDrawerEnabled: true},
		services.SaleCommitOptions{MaxAttempts: 3, RetryBackoff: time.Millisecond, Timeout: time.Second},
	)
}

func (suite *SaleServiceTestSuite) draftSale(payment domain.PaymentMethod) domain.Sale {
	return domain.Sale{
		PaymentMethod: payment,
		Items: []domain.SaleItem{
			{ItemKind: domain.ItemProduct, ItemID: suite.beerID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(25)},
		},
	}
}

func (suite *SaleServiceTestSuite) stockDeltas() []domain.StockDelta {
	return []domain.StockDelta{{ProductID: suite.beerID, Quantity: decimal.NewFromInt(-3)}}
}

func (suite *SaleServiceTestSuite) TestCommitSale_CashWithOpenRegister() {
	ctx := context.Background()
	registerID := uuid.NewString()
	register := &domain.CashRegister{RegisterID: registerID, Status: domain.RegisterOpen}

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(nil).Once()
	suite.mockRegisterSvc.On("FindOpenRegisterInTx", mock.Anything, mock.Anything).Return(register, nil).Once()
	suite.mockRegisterSvc.On("PostSaleIncomeInTx", mock.Anything, mock.Anything, registerID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(75)) }),
		mock.AnythingOfType("string"), suite.testUserID).Return(nil).Once()
	suite.mockSaleRepo.On("InsertSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil).Once()
	suite.mockSaleRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	committed, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(committed)
	suite.NotEmpty(committed.SaleID)
	suite.True(committed.GrandTotal.Equal(decimal.NewFromInt(75)))
	suite.Require().NotNil(committed.CashRegisterID)
	suite.Equal(registerID, *committed.CashRegisterID)
	suite.Require().Len(committed.Items, 1)
	suite.NotEmpty(committed.Items[0].SaleItemID)
	suite.Equal(committed.SaleID, committed.Items[0].SaleID)
	suite.True(committed.Items[0].LineTotal.Equal(decimal.NewFromInt(75)))
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockRegisterSvc.AssertExpectations(suite.T())
	suite.mockStockLedger.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCommitSale_CashNoOpenRegister() {
	ctx := context.Background()

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(nil).Once()
	suite.mockRegisterSvc.On("FindOpenRegisterInTx", mock.Anything, mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("InsertSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil).Once()
	suite.mockSaleRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	committed, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().NoError(err)
	suite.Nil(committed.CashRegisterID)
	suite.mockRegisterSvc.AssertNotCalled(suite.T(), "PostSaleIncomeInTx",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Register income is posted for every payment method, not only cash.
func (suite *SaleServiceTestSuite) TestCommitSale_CardPostsRegisterIncome() {
	ctx := context.Background()
	registerID := uuid.NewString()
	register := &domain.CashRegister{RegisterID: registerID, Status: domain.RegisterOpen}

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(nil).Once()
	suite.mockRegisterSvc.On("FindOpenRegisterInTx", mock.Anything, mock.Anything).Return(register, nil).Once()
	suite.mockRegisterSvc.On("PostSaleIncomeInTx", mock.Anything, mock.Anything, registerID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(75)) }),
		mock.AnythingOfType("string"), suite.testUserID).Return(nil).Once()
	suite.mockSaleRepo.On("InsertSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil).Once()
	suite.mockSaleRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	committed, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCard), suite.testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(committed.CashRegisterID)
	suite.Equal(registerID, *committed.CashRegisterID)
	suite.mockRegisterSvc.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCommitSale_CashDrawerDisabled() {
	ctx := context.Background()
	service := suite.newService(
		services.Capabilities{CashDrawerEnabled: false},
		services.SaleCommitOptions{MaxAttempts: 3, RetryBackoff: time.Millisecond, Timeout: time.Second},
	)

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(nil).Once()
	suite.mockSaleRepo.On("InsertSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil).Once()
	suite.mockSaleRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	committed, err := service.CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().NoError(err)
	suite.Nil(committed.CashRegisterID)
	suite.mockRegisterSvc.AssertNotCalled(suite.T(), "FindOpenRegisterInTx", mock.Anything, mock.Anything)
}

// Short stock caught by the pre-check fails before any transaction opens.
func (suite *SaleServiceTestSuite) TestCommitSale_InsufficientStockFailsBeforeTx() {
	ctx := context.Background()
	stockErr := &services.InsufficientStockError{
		ProductID: suite.beerID,
		Requested: decimal.NewFromInt(3),
		Available: decimal.NewFromInt(1),
	}

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(stockErr).Once()

	_, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().Error(err)
	var target *services.InsufficientStockError
	suite.True(errors.As(err, &target))
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.mockStockLedger.AssertNotCalled(suite.T(), "ApplyDeltas",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Stock that turns short between the pre-check and the lock still aborts the
// commit without a retry.
func (suite *SaleServiceTestSuite) TestCommitSale_InsufficientStockUnderLockNoRetry() {
	ctx := context.Background()
	stockErr := &services.InsufficientStockError{
		ProductID: suite.beerID,
		Requested: decimal.NewFromInt(3),
		Available: decimal.NewFromInt(1),
	}

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(stockErr).Once()

	_, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().Error(err)
	var target *services.InsufficientStockError
	suite.True(errors.As(err, &target))
	suite.mockSaleRepo.AssertNumberOfCalls(suite.T(), "Begin", 1)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "InsertSaleInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCommitSale_ConflictRetriesThenSucceeds() {
	ctx := context.Background()

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Twice()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(apperrors.ErrConflict).Once()
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(nil).Once()
	suite.mockRegisterSvc.On("FindOpenRegisterInTx", mock.Anything, mock.Anything).Return(nil, nil).Once()
	suite.mockSaleRepo.On("InsertSaleInTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil).Once()
	suite.mockSaleRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	committed, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(committed)
	suite.mockSaleRepo.AssertNumberOfCalls(suite.T(), "Begin", 2)
	suite.mockStockLedger.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCommitSale_RetriesExhausted() {
	ctx := context.Background()
	service := suite.newService(
		services.Capabilities{CashDrawerEnabled: true},
		services.SaleCommitOptions{MaxAttempts: 2, RetryBackoff: time.Millisecond, Timeout: time.Second},
	)

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(suite.stockDeltas(), nil).Once()
	suite.mockStockLedger.On("CheckAvailability", ctx, suite.stockDeltas()).Return(nil).Once()
	suite.mockSaleRepo.On("Begin", mock.Anything).Return(nil, nil).Twice()
	suite.mockSaleRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockStockLedger.On("ApplyDeltas", mock.Anything, mock.Anything, suite.stockDeltas(), domain.MovementSale, mock.AnythingOfType("*string"), suite.testUserID).
		Return(apperrors.ErrConflict).Twice()

	_, err := service.CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSaleRepo.AssertNumberOfCalls(suite.T(), "Begin", 2)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCommitSale_EmptyItems() {
	sale := domain.Sale{PaymentMethod: domain.PaymentCash}

	_, err := suite.defaultService().CommitSale(context.Background(), sale, suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEmptySale)
	suite.mockExpander.AssertNotCalled(suite.T(), "Expand", mock.Anything, mock.Anything)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCommitSale_UnknownPaymentMethod() {
	_, err := suite.defaultService().CommitSale(context.Background(), suite.draftSale(domain.PaymentMethod("CHECK")), suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestCommitSale_NonPositiveItemQuantity() {
	sale := suite.draftSale(domain.PaymentCash)
	sale.Items[0].Quantity = decimal.Zero

	_, err := suite.defaultService().CommitSale(context.Background(), sale, suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpander.AssertNotCalled(suite.T(), "Expand", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCommitSale_ZeroUnitPriceRejected() {
	sale := suite.draftSale(domain.PaymentCash)
	sale.Items[0].UnitPrice = decimal.Zero

	_, err := suite.defaultService().CommitSale(context.Background(), sale, suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpander.AssertNotCalled(suite.T(), "Expand", mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCommitSale_ExpansionErrorStopsCommit() {
	ctx := context.Background()

	suite.mockExpander.On("Expand", ctx, mock.AnythingOfType("[]domain.SaleItem")).
		Return(nil, services.ErrComboNested).Once()

	_, err := suite.defaultService().CommitSale(ctx, suite.draftSale(domain.PaymentCash), suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrComboNested)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_Success() {
	ctx := context.Background()
	saleID := uuid.NewString()
	expected := &domain.Sale{SaleID: saleID, PaymentMethod: domain.PaymentCard}

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(expected, nil).Once()

	sale, err := suite.defaultService().GetSaleByID(ctx, saleID)

	suite.Require().NoError(err)
	suite.Equal(expected, sale)
}

func (suite *SaleServiceTestSuite) TestGetSaleByID_NotFound() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.defaultService().GetSaleByID(ctx, saleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SaleServiceTestSuite) TestListSales_DefaultsLimit() {
	ctx := context.Background()

	suite.mockSaleRepo.On("ListSales", ctx, 20, (*string)(nil)).
		Return([]domain.Sale{}, nil, nil).Once()

	_, token, err := suite.defaultService().ListSales(ctx, 0, nil)

	suite.Require().NoError(err)
	suite.Nil(token)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
