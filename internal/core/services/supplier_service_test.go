package services_test

import (
	"context"
	"testing"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portsrepo "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// --- Test Suite Setup ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.SupplierSvcFacade
	testUserID       string
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo)
	suite.testUserID = uuid.NewString()
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	draft := domain.Supplier{Name: "Distribuidora Central", TaxID: "76543210-9"}

	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == "Distribuidora Central" &&
			s.SupplierID != "" &&
			s.IsActive &&
			s.CreatedBy == suite.testUserID
	})).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, draft, suite.testUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(supplier)
	suite.NotEmpty(supplier.SupplierID)
	suite.True(supplier.IsActive)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_MissingName() {
	_, err := suite.service.CreateSupplier(context.Background(), domain.Supplier{}, suite.testUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "SaveSupplier", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestGetSupplierByID_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetSupplierByID(ctx, supplierID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_DefaultsLimit() {
	ctx := context.Background()

	suite.mockSupplierRepo.On("ListSuppliers", ctx, 20, 0).Return([]domain.Supplier{}, nil).Once()

	_, err := suite.service.ListSuppliers(ctx, 0, -1)

	suite.Require().NoError(err)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
