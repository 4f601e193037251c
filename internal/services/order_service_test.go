package services

import (
	"errors"
	"testing"
	"time"

	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
	"commerce-insights/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// OrderServiceTestSuite defines the test suite for OrderService
type OrderServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockOrderRepo *repository_mocks.MockOrderRepositoryInterface
	service       OrderServiceInterface
}

// SetupTest runs before each test
func (s *OrderServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOrderRepo = repository_mocks.NewMockOrderRepositoryInterface(s.ctrl)
	s.service = NewOrderService(s.mockOrderRepo)
}

// TearDownTest runs after each test
func (s *OrderServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestOrderServiceSuite runs the test suite
func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

// Test listing passes filters through and returns the repository page
func (s *OrderServiceTestSuite) TestListOrders_Success() {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	orders := []models.Order{
		newLedgerLine("INV-1001", "12345", "United Kingdom", "PARTY BUNTING", 40.00, base),
		newLedgerLine("INV-1002", "23456", "France", "CHILLI LIGHTS", 60.00, base.AddDate(0, 0, -1)),
	}

	s.mockOrderRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.OrderFilters) ([]models.Order, int64, error) {
			s.Equal(25, filters.Limit)
			s.Equal(0, filters.Offset)
			return orders, 2, nil
		})

	result, total, err := s.service.ListOrders(models.OrderFilters{Limit: 25})

	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(result, 2)
}

// Test a zero limit falls back to the default page size
func (s *OrderServiceTestSuite) TestListOrders_DefaultPageSize() {
	s.mockOrderRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.OrderFilters) ([]models.Order, int64, error) {
			s.Equal(DefaultPageSize, filters.Limit)
			return []models.Order{}, 0, nil
		})

	_, _, err := s.service.ListOrders(models.OrderFilters{})

	s.NoError(err)
}

// Test an oversized limit is clamped, not rejected
func (s *OrderServiceTestSuite) TestListOrders_LimitClamped() {
	s.mockOrderRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.OrderFilters) ([]models.Order, int64, error) {
			s.Equal(MaxPageSize, filters.Limit)
			return []models.Order{}, 0, nil
		})

	_, _, err := s.service.ListOrders(models.OrderFilters{Limit: 9999})

	s.NoError(err)
}

// Test an inverted date range is rejected before touching the repository
func (s *OrderServiceTestSuite) TestListOrders_InvalidDateRange() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	result, total, err := s.service.ListOrders(models.OrderFilters{
		StartDate: &start,
		EndDate:   &end,
	})

	s.ErrorIs(err, ErrInvalidDateRange)
	s.Nil(result)
	s.Equal(int64(0), total)
}

// Test listing propagates repository failures
func (s *OrderServiceTestSuite) TestListOrders_RepositoryError() {
	s.mockOrderRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		Return(nil, int64(0), errors.New("connection refused"))

	result, _, err := s.service.ListOrders(models.OrderFilters{})

	s.Error(err)
	s.Contains(err.Error(), "failed to list orders")
	s.Nil(result)
}

// Test fetching one order returns all of its lines
func (s *OrderServiceTestSuite) TestGetOrder_Success() {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	lines := []models.Order{
		newLedgerLine("INV-1001", "12345", "United Kingdom", "PARTY BUNTING", 40.00, base),
		newLedgerLine("INV-1001", "12345", "United Kingdom", "CHILLI LIGHTS", 15.00, base),
	}

	s.mockOrderRepo.EXPECT().GetByOrderRef("INV-1001").Return(lines, nil)

	result, err := s.service.GetOrder("INV-1001")

	s.NoError(err)
	s.Len(result, 2)
	s.Equal("INV-1001", result[0].OrderRef)
}

// Test an empty reference short-circuits to not found
func (s *OrderServiceTestSuite) TestGetOrder_EmptyRef() {
	result, err := s.service.GetOrder("")

	s.ErrorIs(err, repositories.ErrOrderNotFound)
	s.Nil(result)
}

// Test an unknown reference surfaces the not-found sentinel unwrapped
func (s *OrderServiceTestSuite) TestGetOrder_NotFound() {
	s.mockOrderRepo.EXPECT().GetByOrderRef("INV-9999").Return(nil, repositories.ErrOrderNotFound)

	result, err := s.service.GetOrder("INV-9999")

	s.ErrorIs(err, repositories.ErrOrderNotFound)
	s.Nil(result)
}

// Test facets pass through from the repository
func (s *OrderServiceTestSuite) TestGetFacets_Success() {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	facets := &models.DatasetFacets{
		Countries:   []string{"France", "United Kingdom"},
		Products:    []string{"CHILLI LIGHTS", "PARTY BUNTING"},
		FirstOrder:  &first,
		LastOrder:   &last,
		TotalOrders: 42,
	}

	s.mockOrderRepo.EXPECT().GetFacets().Return(facets, nil)

	result, err := s.service.GetFacets()

	s.NoError(err)
	s.Equal(facets, result)
}

// Test facet failures are wrapped with context
func (s *OrderServiceTestSuite) TestGetFacets_RepositoryError() {
	s.mockOrderRepo.EXPECT().GetFacets().Return(nil, errors.New("connection refused"))

	result, err := s.service.GetFacets()

	s.Error(err)
	s.Contains(err.Error(), "failed to get dataset facets")
	s.Nil(result)
}
