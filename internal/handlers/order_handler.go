package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"commerce-insights/internal/dto"
	apierrors "commerce-insights/internal/errors"
	"commerce-insights/internal/repositories"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

const facetsCacheTTL = 5 * time.Minute

// OrderHandler handles order ledger HTTP requests
type OrderHandler struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListOrders retrieves a filtered page of order lines
//
// Method: GET /api/v1/orders
// Authentication: None (read endpoint)
//
// Query parameters:
//   - countries: Country filter, repeatable or comma-separated (optional)
//   - products: Product filter, repeatable or comma-separated (optional)
//   - customerId: Restrict to one customer (optional)
//   - startDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - endDate: Inclusive day bound, YYYY-MM-DD (optional)
//   - limit: Page size, max 500 (default 50)
//   - offset: Rows to skip (default 0)
//
// Success Response: 200 OK
//   - orders: Array of order lines in chronological order
//   - pagination: total / offset / limit / hasMore
//
// Error Responses:
//   - 400: Invalid filter or date parameters
//   - 500: Internal server error
func (h *OrderHandler) ListOrders(c echo.Context) error {
	filters, err := parseOrderFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	limit := getIntParam(c, "limit", services.DefaultPageSize)
	if limit < 1 {
		limit = services.DefaultPageSize
	}
	if limit > services.MaxPageSize {
		limit = services.MaxPageSize
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	filters.Limit = limit
	filters.Offset = offset

	orders, total, err := h.orderService.ListOrders(filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	response := dto.ListOrdersResponse{
		Orders: orders,
		Pagination: dto.PaginationInfo{
			Total:   total,
			Offset:  offset,
			Limit:   limit,
			HasMore: int64(offset+len(orders)) < total,
		},
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder retrieves every line of a single invoice
//
// Method: GET /api/v1/orders/:orderRef
// Authentication: None (read endpoint)
//
// Path parameters:
//   - orderRef: Invoice reference, e.g. 536365 or C536379 for a credit note
//
// Success Response: 200 OK
//   - data: Array of the invoice's order lines
//
// Error Responses:
//   - 400: Missing order reference
//   - 404: Unknown order reference
//   - 500: Internal server error
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderRef := c.Param("orderRef")
	if orderRef == "" {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("orderRef is required"))
	}

	lines, err := h.orderService.GetOrder(orderRef)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: lines,
	})
}

// GetFacets describes the filterable surface of the stored dataset
//
// Method: GET /api/v1/orders/facets
// Authentication: None (read endpoint)
//
// Success Response: 200 OK
//   - countries: Distinct shipping countries, alphabetical
//   - products: Distinct product descriptions, alphabetical
//   - first_order / last_order: Covered date span
//   - total_orders: Distinct invoice count
//
// Error Responses:
//   - 500: Internal server error
func (h *OrderHandler) GetFacets(c echo.Context) error {
	facets, err := h.orderService.GetFacets()
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(facetsCacheTTL.Seconds())))

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: facets,
	})
}

func (h *OrderHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrInvalidDateRange) {
		return SendError(c, apierrors.AnalyticsInvalidDateRange)
	}

	if errors.Is(err, repositories.ErrOrderNotFound) {
		return SendError(c, apierrors.DatasetOrderNotFound)
	}

	return SendSystemError(c, err)
}
