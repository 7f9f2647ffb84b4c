package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/platform/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ComboRepository ---
type MockComboRepository struct {
	mock.Mock
}

var _ portsrepo.ComboRepositoryFacade = (*MockComboRepository)(nil)

func (m *MockComboRepository) FindComboByID(ctx context.Context, comboID string) (*domain.Combo, error) {
	args := m.Called(ctx, comboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Combo), args.Error(1)
}

func (m *MockComboRepository) ListCombos(ctx context.Context, limit int, offset int) ([]domain.Combo, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Combo), args.Error(1)
}

// --- Mock ComboCache ---
type MockComboCache struct {
	mock.Mock
}

var _ cache.ComboCache = (*MockComboCache)(nil)

func (m *MockComboCache) GetCombo(ctx context.Context, comboID string) (*domain.Combo, error) {
	args := m.Called(ctx, comboID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Combo), args.Error(1)
}

func (m *MockComboCache) SetCombo(ctx context.Context, combo domain.Combo) error {
	args := m.Called(ctx, combo)
	return args.Error(0)
}

// --- Test Suite Setup ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockComboRepo   *MockComboRepository
	mockCache       *MockComboCache
	service         portssvc.CatalogSvcFacade
	testComboID     string
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockComboRepo = new(MockComboRepository)
	suite.mockCache = new(MockComboCache)
	suite.service = services.NewCatalogService(suite.mockProductRepo, suite.mockComboRepo, suite.mockCache)
	suite.testComboID = uuid.NewString()
}

func (suite *CatalogServiceTestSuite) testCombo() *domain.Combo {
	return &domain.Combo{
		ComboID:  suite.testComboID,
		Name:     "Six pack",
		Price:    decimal.NewFromInt(120),
		IsActive: true,
	}
}

func (suite *CatalogServiceTestSuite) TestGetComboByID_CacheHit() {
	ctx := context.Background()

	suite.mockCache.On("GetCombo", ctx, suite.testComboID).Return(suite.testCombo(), nil).Once()

	combo, err := suite.service.GetComboByID(ctx, suite.testComboID)

	suite.Require().NoError(err)
	suite.Equal(suite.testComboID, combo.ComboID)
	suite.mockComboRepo.AssertNotCalled(suite.T(), "FindComboByID", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestGetComboByID_CacheMissFillsCache() {
	ctx := context.Background()

	suite.mockCache.On("GetCombo", ctx, suite.testComboID).Return(nil, nil).Once()
	suite.mockComboRepo.On("FindComboByID", ctx, suite.testComboID).Return(suite.testCombo(), nil).Once()
	suite.mockCache.On("SetCombo", ctx, mock.MatchedBy(func(c domain.Combo) bool {
		return c.ComboID == suite.testComboID
	})).Return(nil).Once()

	combo, err := suite.service.GetComboByID(ctx, suite.testComboID)

	suite.Require().NoError(err)
	suite.Equal(suite.testComboID, combo.ComboID)
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockComboRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestGetComboByID_CacheFailureFallsBackToStore() {
	ctx := context.Background()

	suite.mockCache.On("GetCombo", ctx, suite.testComboID).Return(nil, errors.New("connection refused")).Once()
	suite.mockComboRepo.On("FindComboByID", ctx, suite.testComboID).Return(suite.testCombo(), nil).Once()
	suite.mockCache.On("SetCombo", ctx, mock.AnythingOfType("domain.Combo")).Return(errors.New("connection refused")).Once()

	combo, err := suite.service.GetComboByID(ctx, suite.testComboID)

	suite.Require().NoError(err)
	suite.Equal(suite.testComboID, combo.ComboID)
}

func (suite *CatalogServiceTestSuite) TestGetComboByID_NotFound() {
	ctx := context.Background()

	suite.mockCache.On("GetCombo", ctx, suite.testComboID).Return(nil, nil).Once()
	suite.mockComboRepo.On("FindComboByID", ctx, suite.testComboID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetComboByID(ctx, suite.testComboID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCache.AssertNotCalled(suite.T(), "SetCombo", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestGetProductsByIDs_EmptyInput() {
	products, err := suite.service.GetProductsByIDs(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(products)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductsByIDs", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestListProducts_ClampsPaging() {
	ctx := context.Background()

	suite.mockProductRepo.On("ListProducts", ctx, 20, 0).Return([]domain.Product{}, nil).Once()

	_, err := suite.service.ListProducts(ctx, -5, -10)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListCombos_Success() {
	ctx := context.Background()
	expected := []domain.Combo{*suite.testCombo()}

	suite.mockComboRepo.On("ListCombos", ctx, 10, 20).Return(expected, nil).Once()

	combos, err := suite.service.ListCombos(ctx, 10, 20)

	suite.Require().NoError(err)
	suite.Equal(expected, combos)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
