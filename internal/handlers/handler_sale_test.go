package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/dto"
	"github.com/dmaldonadov/retail_backoffice_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

func (m *MockSaleService) CommitSale(ctx context.Context, sale domain.Sale, userID string) (*domain.Sale, error) {
	args := m.Called(ctx, sale, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleService) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
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

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterCustomValidations(v))
	}

	suite.mockSaleService = new(MockSaleService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSaleRoutes(v1, suite.mockSaleService)
}

func (suite *SaleHandlerTestSuite) commitRequestBody() dto.CommitSaleRequest {
	return dto.CommitSaleRequest{
		Items: []dto.CommitSaleItemRequest{
			{
				ItemKind:  domain.ItemProduct,
				ItemID:    uuid.NewString(),
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(50),
			},
		},
		PaymentMethod: domain.PaymentCash,
	}
}

func (suite *SaleHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SaleHandlerTestSuite) TestCommitSale_Success() {
	saleID := uuid.NewString()
	committed := &domain.Sale{
		SaleID:        saleID,
		GrandTotal:    decimal.NewFromInt(100),
		PaymentMethod: domain.PaymentCash,
		SaleDate:      time.Now().UTC(),
		Items: []domain.SaleItem{
			{SaleItemID: uuid.NewString(), SaleID: saleID, ItemKind: domain.ItemProduct, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(100)},
		},
	}

	suite.mockSaleService.On("CommitSale", mock.Anything, mock.MatchedBy(func(s domain.Sale) bool {
		return s.PaymentMethod == domain.PaymentCash && len(s.Items) == 1
	}), "system").Return(committed, nil).Once()

	w := suite.postJSON("/api/v1/sales", suite.commitRequestBody())

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(saleID, responseBody.SaleID)
	suite.True(responseBody.GrandTotal.Equal(decimal.NewFromInt(100)))
	suite.Len(responseBody.Items, 1)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCommitSale_InsufficientStockReturnsConflict() {
	stockErr := &services.InsufficientStockError{
		ProductID: uuid.NewString(),
		Requested: decimal.NewFromInt(5),
		Available: decimal.NewFromInt(2),
	}

	suite.mockSaleService.On("CommitSale", mock.Anything, mock.AnythingOfType("domain.Sale"), "system").
		Return(nil, stockErr).Once()

	w := suite.postJSON("/api/v1/sales", suite.commitRequestBody())

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCommitSale_NestedComboReturnsUnprocessable() {
	suite.mockSaleService.On("CommitSale", mock.Anything, mock.AnythingOfType("domain.Sale"), "system").
		Return(nil, services.ErrComboNested).Once()

	w := suite.postJSON("/api/v1/sales", suite.commitRequestBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCommitSale_UnknownItemReturnsNotFound() {
	suite.mockSaleService.On("CommitSale", mock.Anything, mock.AnythingOfType("domain.Sale"), "system").
		Return(nil, fmt.Errorf("item lookup: %w", apperrors.ErrNotFound)).Once()

	w := suite.postJSON("/api/v1/sales", suite.commitRequestBody())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestCommitSale_ZeroQuantityRejectedAtBinding() {
	body := suite.commitRequestBody()
	body.Items[0].Quantity = decimal.Zero

	w := suite.postJSON("/api/v1/sales", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CommitSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestCommitSale_ZeroUnitPriceRejectedAtBinding() {
	body := suite.commitRequestBody()
	body.Items[0].UnitPrice = decimal.Zero

	w := suite.postJSON("/api/v1/sales", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CommitSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestCommitSale_MissingItemsRejectedAtBinding() {
	body := suite.commitRequestBody()
	body.Items = nil

	w := suite.postJSON("/api/v1/sales", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CommitSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	saleID := uuid.NewString()

	suite.mockSaleService.On("GetSaleByID", mock.Anything, saleID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales/"+saleID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SaleHandlerTestSuite) TestListSales_Success() {
	nextToken := "dG9rZW4"
	sales := []domain.Sale{
		{SaleID: uuid.NewString(), GrandTotal: decimal.NewFromInt(75), PaymentMethod: domain.PaymentCard},
	}

	suite.mockSaleService.On("ListSales", mock.Anything, 10, (*string)(nil)).
		Return(sales, &nextToken, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sales?limit=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListSalesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Sales, 1)
	suite.Require().NotNil(responseBody.NextToken)
	suite.Equal(nextToken, *responseBody.NextToken)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
