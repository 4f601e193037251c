package handlers

import (
	"fmt"
	"strings"
	"time"

	"commerce-insights/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when the caller context carries no client identity
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract the authenticated client ID from context
// Returns ErrUnauthorized if the client ID is missing or invalid
func getClientIDFromContext(c echo.Context) (string, error) {
	clientIDValue := c.Get("client_id")
	if clientIDValue == nil {
		return "", ErrUnauthorized
	}

	clientID, ok := clientIDValue.(string)
	if !ok || clientID == "" {
		return "", ErrUnauthorized
	}

	return clientID, nil
}

// parseOrderFilters parses the filter parameters shared by every read
// endpoint: countries and products (repeatable, OR within the dimension),
// customerId, and an inclusive startDate/endDate day window
func parseOrderFilters(c echo.Context) (models.OrderFilters, error) {
	filters := models.OrderFilters{
		Countries:  multiValueParam(c, "countries"),
		Products:   multiValueParam(c, "products"),
		CustomerID: c.QueryParam("customerId"),
	}

	if startDateStr := c.QueryParam("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid startDate format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid endDate format, use YYYY-MM-DD")
		}
		// Inclusive day bound
		endOfDay := endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filters.EndDate = &endOfDay
	}

	return filters, nil
}

// multiValueParam collects a repeatable query parameter, also splitting
// comma-separated values inside a single occurrence
func multiValueParam(c echo.Context, name string) []string {
	values := c.QueryParams()[name]
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
