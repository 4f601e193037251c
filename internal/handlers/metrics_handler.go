package handlers

import (
	"errors"
	"net/http"
	"strings"

	"commerce-insights/internal/analytics"
	apierrors "commerce-insights/internal/errors"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesMetricsHandler handles aggregate sales metric HTTP requests
type SalesMetricsHandler struct {
	metricsService services.SalesMetricsServiceInterface
}

// NewSalesMetricsHandler creates a new sales metrics handler
func NewSalesMetricsHandler(metricsService services.SalesMetricsServiceInterface) *SalesMetricsHandler {
	return &SalesMetricsHandler{
		metricsService: metricsService,
	}
}

// GetSummary computes the headline KPI block for the filtered dataset
//
// Method: GET /api/v1/metrics/summary
// Authentication: None (read endpoint)
//
// Query parameters:
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: total_revenue, order_count, customer_count,
//     average_order_value
//
// Error Responses:
//   - 400: Invalid filter or date parameters
//   - 500: Internal server error
func (h *SalesMetricsHandler) GetSummary(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	summary, err := h.metricsService.GetSummary(filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

// GetRevenueSeries computes the zero-filled revenue time series
//
// Method: GET /api/v1/metrics/revenue-series
// Authentication: None (read endpoint)
//
// Query parameters:
//   - granularity: daily, weekly or monthly (default: daily)
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of {bucket_start, revenue, order_count}, gap buckets
//     included with zero revenue
//
// Error Responses:
//   - 400: Invalid granularity, filter or date parameters
//   - 500: Internal server error
func (h *SalesMetricsHandler) GetRevenueSeries(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	granularity := strings.ToLower(c.QueryParam("granularity"))
	if granularity == "" {
		granularity = string(analytics.GranularityDaily)
	}

	series, err := h.metricsService.GetRevenueSeries(filters, analytics.Granularity(granularity))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: series,
	})
}

// GetTopCountries ranks countries by revenue
//
// Method: GET /api/v1/rankings/countries
// Authentication: None (read endpoint)
//
// Query parameters:
//   - limit: Number of entries, max 50 (default: 10)
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of {key, revenue, order_count}, revenue descending
//
// Error Responses:
//   - 400: Invalid limit, filter or date parameters
//   - 500: Internal server error
func (h *SalesMetricsHandler) GetTopCountries(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	limit := getIntParam(c, "limit", 0)

	ranking, err := h.metricsService.GetTopCountries(filters, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: ranking,
	})
}

// GetTopProducts ranks product descriptions by units sold
//
// Method: GET /api/v1/rankings/products
// Authentication: None (read endpoint)
//
// Query parameters:
//   - limit: Number of entries, max 50 (default: 10)
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of {key, revenue, order_count}, revenue descending
//
// Error Responses:
//   - 400: Invalid limit, filter or date parameters
//   - 500: Internal server error
func (h *SalesMetricsHandler) GetTopProducts(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	limit := getIntParam(c, "limit", 0)

	ranking, err := h.metricsService.GetTopProducts(filters, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: ranking,
	})
}

func (h *SalesMetricsHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, apierrors.AnalyticsInvalidDateRange)
	}

	if errors.Is(err, services.ErrInvalidGranularity) {
		return SendError(c, apierrors.AnalyticsInvalidGranularity)
	}

	if errors.Is(err, services.ErrInvalidLimit) {
		return SendError(c, apierrors.AnalyticsInvalidLimit)
	}

	return SendSystemError(c, err)
}
