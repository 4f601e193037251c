package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce-insights/internal/analytics"
	"commerce-insights/internal/models"
	"commerce-insights/internal/services"
	"commerce-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SegmentHandlerTestSuite struct {
	suite.Suite
	handler             *SegmentHandler
	echo                *echo.Echo
	ctrl                *gomock.Controller
	segmentationService *service_mocks.MockSegmentationServiceInterface
}

func TestSegmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(SegmentHandlerTestSuite))
}

func (s *SegmentHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.segmentationService = service_mocks.NewMockSegmentationServiceInterface(s.ctrl)
	s.handler = NewSegmentHandler(s.segmentationService)
}

func (s *SegmentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SegmentHandlerTestSuite) getContext(url string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	return rec, s.echo.NewContext(req, rec)
}

func (s *SegmentHandlerTestSuite) scoredCustomer(customerID, composite, segment string) analytics.ScoredCustomer {
	return analytics.ScoredCustomer{
		CustomerAggregate: analytics.CustomerAggregate{
			CustomerID: customerID,
			Recency:    12,
			Frequency:  8,
			Monetary:   decimal.NewFromFloat(1840.60),
		},
		RecencyScore:   5,
		FrequencyScore: 4,
		MonetaryScore:  5,
		CompositeScore: composite,
		Segment:        segment,
	}
}

// Scored Customer Tests

func (s *SegmentHandlerTestSuite) TestGetScoredCustomers_Success() {
	customers := []analytics.ScoredCustomer{
		s.scoredCustomer("17850", "545", "Best"),
		s.scoredCustomer("13047", "435", "Loyal"),
	}

	s.segmentationService.EXPECT().
		GetScoredCustomers(gomock.Any(), "").
		Return(customers, nil)

	rec, c := s.getContext("/api/v1/segments/customers")

	err := s.handler.GetScoredCustomers(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	s.NoError(err)

	rows, ok := response.Data.([]interface{})
	s.True(ok)
	s.Len(rows, 2)

	first, ok := rows[0].(map[string]interface{})
	s.True(ok)
	s.Equal("17850", first["customer_id"])
	s.Equal("545", first["composite_score"])
	s.Equal("Best", first["segment"])
}

func (s *SegmentHandlerTestSuite) TestGetScoredCustomers_SegmentFilter() {
	s.segmentationService.EXPECT().
		GetScoredCustomers(gomock.Any(), "Best").
		Return([]analytics.ScoredCustomer{s.scoredCustomer("17850", "555", "Best")}, nil)

	rec, c := s.getContext("/api/v1/segments/customers?segment=Best")

	err := s.handler.GetScoredCustomers(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SegmentHandlerTestSuite) TestGetScoredCustomers_PassesFilters() {
	s.segmentationService.EXPECT().
		GetScoredCustomers(gomock.Any(), "").
		DoAndReturn(func(filters models.OrderFilters, segment string) ([]analytics.ScoredCustomer, error) {
			s.Equal([]string{"France"}, filters.Countries)
			return nil, nil
		})

	rec, c := s.getContext("/api/v1/segments/customers?countries=France")

	err := s.handler.GetScoredCustomers(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SegmentHandlerTestSuite) TestGetScoredCustomers_UnknownSegment() {
	s.segmentationService.EXPECT().
		GetScoredCustomers(gomock.Any(), "Whales").
		Return(nil, services.ErrInvalidSegment)

	rec, c := s.getContext("/api/v1/segments/customers?segment=Whales")

	err := s.handler.GetScoredCustomers(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &errorResp)
	s.NoError(err)
	s.Equal("ANALYTICS_004", errorResp.Error.Code)
}

func (s *SegmentHandlerTestSuite) TestGetScoredCustomers_InvalidDate() {
	rec, c := s.getContext("/api/v1/segments/customers?startDate=01.01.2024")

	err := s.handler.GetScoredCustomers(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// Histogram Tests

func (s *SegmentHandlerTestSuite) TestGetCompositeHistogram_Success() {
	bins := []analytics.HistogramBin{
		{CompositeScore: "111", CustomerCount: 14},
		{CompositeScore: "344", CustomerCount: 6},
		{CompositeScore: "555", CustomerCount: 9},
	}

	s.segmentationService.EXPECT().
		GetCompositeHistogram(gomock.Any()).
		Return(bins, nil)

	rec, c := s.getContext("/api/v1/segments/histogram")

	err := s.handler.GetCompositeHistogram(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	s.NoError(err)

	data, ok := response.Data.([]interface{})
	s.True(ok)
	s.Len(data, 3)
}

func (s *SegmentHandlerTestSuite) TestGetCompositeHistogram_DateRangeError() {
	s.segmentationService.EXPECT().
		GetCompositeHistogram(gomock.Any()).
		Return(nil, services.ErrInvalidDateRange)

	rec, c := s.getContext("/api/v1/segments/histogram?startDate=2024-06-01&endDate=2024-01-01")

	err := s.handler.GetCompositeHistogram(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	err = json.Unmarshal(rec.Body.Bytes(), &errorResp)
	s.NoError(err)
	s.Equal("ANALYTICS_001", errorResp.Error.Code)
}

// Distribution Tests

func (s *SegmentHandlerTestSuite) TestGetSegmentDistribution_Success() {
	distribution := []analytics.SegmentSummary{
		{Segment: "Best", CustomerCount: 12, AvgRecency: decimal.NewFromInt(9), TotalMonetary: decimal.NewFromFloat(61200.40)},
		{Segment: "New", CustomerCount: 20, AvgRecency: decimal.NewFromInt(21)},
		{Segment: "Loyal", CustomerCount: 17, AvgRecency: decimal.NewFromInt(44)},
		{Segment: "Others", CustomerCount: 48, AvgRecency: decimal.NewFromInt(130)},
	}

	s.segmentationService.EXPECT().
		GetSegmentDistribution(gomock.Any()).
		Return(distribution, nil)

	rec, c := s.getContext("/api/v1/segments/distribution")

	err := s.handler.GetSegmentDistribution(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	s.NoError(err)

	rows, ok := response.Data.([]interface{})
	s.True(ok)
	s.Len(rows, 4)

	first, ok := rows[0].(map[string]interface{})
	s.True(ok)
	s.Equal("Best", first["segment"])
	s.Equal(float64(12), first["customer_count"])
}

func (s *SegmentHandlerTestSuite) TestGetSegmentDistribution_ServiceError() {
	s.segmentationService.EXPECT().
		GetSegmentDistribution(gomock.Any()).
		Return(nil, services.ErrInvalidDateRange)

	rec, c := s.getContext("/api/v1/segments/distribution")

	err := s.handler.GetSegmentDistribution(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}
