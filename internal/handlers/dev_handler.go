package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"commerce-insights/internal/dto"
	"commerce-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	datasetService services.DatasetServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(datasetService services.DatasetServiceInterface) *DevHandler {
	return &DevHandler{
		datasetService: datasetService,
	}
}

// GenerateData replaces the stored dataset with synthetic order history
//
// Method: POST /api/v1/dev/generate-data
// Authentication: Required (Bearer token)
// Environment: Development only
//
// Request body (all fields optional):
//   - customers: Number of distinct customers (default: 150, max: 10000)
//   - orders: Number of invoices to generate (default: 2000, max: 200000)
//   - startDate: First covered day, YYYY-MM-DD (default: one year ago)
//   - endDate: Last covered day, YYYY-MM-DD (default: today)
//   - seed: RNG seed for reproducible datasets (default: random)
//
// Success Response: 200 OK
//   - message: Success message
//   - summary: Deleted lines, generated customer/order counts, inserted
//     lines and covered date span
//
// Error Responses:
//   - 400: Invalid body, malformed dates or inverted date range
//   - 401: Unauthorized
//   - 403: Forbidden (not development environment)
//   - 500: Internal server error
func (h *DevHandler) GenerateData(c echo.Context) error {
	clientID, err := getClientIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	req := new(dto.GenerateDataRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	summary, err := h.datasetService.RegenerateDataset(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return echo.NewHTTPError(http.StatusBadRequest, services.ErrInvalidDateRange.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to regenerate dataset")
	}

	slog.Info("development dataset regenerated",
		"client_id", clientID,
		"lines_inserted", summary.LinesInserted,
	)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "dataset regenerated successfully",
		"summary": summary,
	})
}
