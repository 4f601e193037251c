package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"commerce-insights/internal/analytics"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories/repository_mocks"
	"commerce-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SegmentationServiceTestSuite defines the test suite for SegmentationService
type SegmentationServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockOrderRepo *repository_mocks.MockOrderRepositoryInterface
	mockMetrics   *service_mocks.MockMetricsRecorderInterface
	service       SegmentationServiceInterface
}

// SetupTest runs before each test
func (s *SegmentationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOrderRepo = repository_mocks.NewMockOrderRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewSegmentationService(s.mockOrderRepo, s.mockMetrics)
}

// TearDownTest runs after each test
func (s *SegmentationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSegmentationServiceSuite runs the test suite
func TestSegmentationServiceSuite(t *testing.T) {
	suite.Run(t, new(SegmentationServiceTestSuite))
}

// fiveCustomerLedger builds a population where every customer lands in a
// different quantile on all three dimensions: customer 10001 is the most
// recent, most frequent and highest spending, 10005 the opposite extreme.
func (s *SegmentationServiceTestSuite) fiveCustomerLedger() []models.Order {
	latest := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	specs := []struct {
		customerID  string
		daysAgo     int
		orders      int
		totalAmount float64
	}{
		{"10001", 0, 5, 1000.00},
		{"10002", 10, 4, 800.00},
		{"10003", 20, 3, 600.00},
		{"10004", 30, 2, 400.00},
		{"10005", 40, 1, 200.00},
	}

	lines := make([]models.Order, 0)
	for _, spec := range specs {
		perOrder := spec.totalAmount / float64(spec.orders)
		for i := 0; i < spec.orders; i++ {
			occurredAt := latest.AddDate(0, 0, -spec.daysAgo-i)
			ref := fmt.Sprintf("INV-%s-%d", spec.customerID, i)
			lines = append(lines, newLedgerLine(ref, spec.customerID, "United Kingdom", "PARTY BUNTING", perOrder, occurredAt))
		}
	}
	return lines
}

func (s *SegmentationServiceTestSuite) expectScoringMetrics(population float64) {
	s.mockMetrics.EXPECT().RecordProcessingTime("segmentation.scoring", gomock.Any())
	s.mockMetrics.EXPECT().RecordGauge("segmentation.population", population, gomock.Any())
}

// Test the full scoring pipeline over a five-customer population
func (s *SegmentationServiceTestSuite) TestGetScoredCustomers_Success() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return(s.fiveCustomerLedger(), nil)
	s.expectScoringMetrics(5)

	scored, err := s.service.GetScoredCustomers(models.OrderFilters{}, "")

	s.NoError(err)
	s.Len(scored, 5)

	best := scored[0]
	s.Equal("10001", best.CustomerID)
	s.Equal(1, best.Recency)
	s.Equal(5, best.Frequency)
	s.True(best.Monetary.Equal(decimal.NewFromFloat(1000.00)))
	s.Equal(5, best.RecencyScore)
	s.Equal(5, best.FrequencyScore)
	s.Equal(5, best.MonetaryScore)
	s.Equal("555", best.CompositeScore)
	s.Equal(analytics.SegmentBest, best.Segment)

	worst := scored[4]
	s.Equal("10005", worst.CustomerID)
	s.Equal("111", worst.CompositeScore)
	s.Equal(analytics.SegmentOthers, worst.Segment)
}

// Test segment filtering keeps only the requested label
func (s *SegmentationServiceTestSuite) TestGetScoredCustomers_FilterBySegment() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return(s.fiveCustomerLedger(), nil)
	s.expectScoringMetrics(5)

	scored, err := s.service.GetScoredCustomers(models.OrderFilters{}, analytics.SegmentBest)

	s.NoError(err)
	s.Len(scored, 2)
	s.Equal("10001", scored[0].CustomerID)
	s.Equal("10002", scored[1].CustomerID)
}

// Test an unknown segment label is rejected before any scoring work
func (s *SegmentationServiceTestSuite) TestGetScoredCustomers_InvalidSegment() {
	scored, err := s.service.GetScoredCustomers(models.OrderFilters{}, "Whales")

	s.ErrorIs(err, ErrInvalidSegment)
	s.Nil(scored)
}

// Test scoring an empty dataset yields an empty population, not an error
func (s *SegmentationServiceTestSuite) TestGetScoredCustomers_EmptyDataset() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return([]models.Order{}, nil)
	s.expectScoringMetrics(0)

	scored, err := s.service.GetScoredCustomers(models.OrderFilters{}, "")

	s.NoError(err)
	s.NotNil(scored)
	s.Len(scored, 0)
}

// Test an inverted date range fails before touching the repository
func (s *SegmentationServiceTestSuite) TestGetScoredCustomers_InvalidDateRange() {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	scored, err := s.service.GetScoredCustomers(models.OrderFilters{
		StartDate: &start,
		EndDate:   &end,
	}, "")

	s.ErrorIs(err, ErrInvalidDateRange)
	s.Nil(scored)
}

// Test the histogram bins come back sorted by composite code
func (s *SegmentationServiceTestSuite) TestGetCompositeHistogram_Success() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return(s.fiveCustomerLedger(), nil)
	s.expectScoringMetrics(5)

	bins, err := s.service.GetCompositeHistogram(models.OrderFilters{})

	s.NoError(err)
	s.Len(bins, 5)
	s.Equal("111", bins[0].CompositeScore)
	s.Equal("555", bins[4].CompositeScore)
	for _, bin := range bins {
		s.Equal(int64(1), bin.CustomerCount)
	}
}

// Test histogram propagates repository failures
func (s *SegmentationServiceTestSuite) TestGetCompositeHistogram_RepositoryError() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return(nil, errors.New("connection refused"))

	bins, err := s.service.GetCompositeHistogram(models.OrderFilters{})

	s.Error(err)
	s.Contains(err.Error(), "failed to fetch orders")
	s.Nil(bins)
}

// Test the distribution follows taxonomy order and skips empty segments
func (s *SegmentationServiceTestSuite) TestGetSegmentDistribution_Success() {
	s.mockOrderRepo.EXPECT().GetAllFiltered(gomock.Any()).Return(s.fiveCustomerLedger(), nil)
	s.expectScoringMetrics(5)

	distribution, err := s.service.GetSegmentDistribution(models.OrderFilters{})

	s.NoError(err)
	s.Len(distribution, 2)

	s.Equal(analytics.SegmentBest, distribution[0].Segment)
	s.Equal(int64(2), distribution[0].CustomerCount)
	s.True(distribution[0].TotalMonetary.Equal(decimal.NewFromFloat(1800.00)))

	s.Equal(analytics.SegmentOthers, distribution[1].Segment)
	s.Equal(int64(3), distribution[1].CustomerCount)
	s.True(distribution[1].TotalMonetary.Equal(decimal.NewFromFloat(1200.00)))
}
