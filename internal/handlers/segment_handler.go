package handlers

import (
	"errors"
	"net/http"

	apierrors "commerce-insights/internal/errors"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// SegmentHandler handles customer segmentation HTTP requests
type SegmentHandler struct {
	segmentationService services.SegmentationServiceInterface
}

// NewSegmentHandler creates a new segmentation handler
func NewSegmentHandler(segmentationService services.SegmentationServiceInterface) *SegmentHandler {
	return &SegmentHandler{
		segmentationService: segmentationService,
	}
}

// GetScoredCustomers runs the scoring pipeline and returns the customer table
//
// Method: GET /api/v1/segments/customers
// Authentication: None (read endpoint)
//
// Query parameters:
//   - segment: Restrict to one segment label, e.g. Best (optional)
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of scored customers ordered by composite score
//     descending; each row carries recency/frequency/monetary values,
//     the three per-dimension scores, the composite score and the
//     segment label
//
// Error Responses:
//   - 400: Unknown segment label, invalid filter or date parameters
//   - 500: Internal server error
func (h *SegmentHandler) GetScoredCustomers(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	segment := c.QueryParam("segment")

	customers, err := h.segmentationService.GetScoredCustomers(filters, segment)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: customers,
	})
}

// GetCompositeHistogram buckets customers by composite score
//
// Method: GET /api/v1/segments/histogram
// Authentication: None (read endpoint)
//
// Query parameters:
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of {composite_score, customer_count} ordered by
//     ascending composite score; only observed scores appear
//
// Error Responses:
//   - 400: Invalid filter or date parameters
//   - 500: Internal server error
func (h *SegmentHandler) GetCompositeHistogram(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	histogram, err := h.segmentationService.GetCompositeHistogram(filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: histogram,
	})
}

// GetSegmentDistribution aggregates customers per segment label
//
// Method: GET /api/v1/segments/distribution
// Authentication: None (read endpoint)
//
// Query parameters:
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//
// Success Response: 200 OK
//   - data: Array of per-segment rows (customer_count, average
//     recency/frequency/monetary, total_monetary) in fixed segment
//     order: Best, New, Loyal, Others
//
// Error Responses:
//   - 400: Invalid filter or date parameters
//   - 500: Internal server error
func (h *SegmentHandler) GetSegmentDistribution(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	distribution, err := h.segmentationService.GetSegmentDistribution(filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: distribution,
	})
}

func (h *SegmentHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, apierrors.AnalyticsInvalidDateRange)
	}

	if errors.Is(err, services.ErrInvalidSegment) {
		return SendError(c, apierrors.AnalyticsInvalidSegment)
	}

	return SendSystemError(c, err)
}
