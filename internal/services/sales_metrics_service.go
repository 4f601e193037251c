package services

import (
	"errors"
	"fmt"
	"log/slog"

	"commerce-insights/internal/analytics"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
)

const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 50
)

var (
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidGranularity = errors.New("granularity must be daily, weekly or monthly")
	ErrInvalidLimit       = errors.New("ranking limit out of range")
)

type salesMetricsService struct {
	orderRepo repositories.OrderRepositoryInterface
}

func NewSalesMetricsService(orderRepo repositories.OrderRepositoryInterface) SalesMetricsServiceInterface {
	return &salesMetricsService{
		orderRepo: orderRepo,
	}
}

func (s *salesMetricsService) GetSummary(filters models.OrderFilters) (*analytics.SalesSummary, error) {
	orders, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	summary := analytics.Summarize(orders)

	slog.Info("sales summary computed",
		"order_lines", len(orders),
		"orders", summary.OrderCount,
		"customers", summary.CustomerCount)

	return &summary, nil
}

func (s *salesMetricsService) GetRevenueSeries(filters models.OrderFilters, granularity analytics.Granularity) ([]analytics.RevenueBucket, error) {
	if !analytics.IsValidGranularity(string(granularity)) {
		return nil, ErrInvalidGranularity
	}

	orders, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	series := analytics.RevenueSeries(orders, granularity)

	slog.Info("revenue series computed",
		"granularity", string(granularity),
		"order_lines", len(orders),
		"buckets", len(series))

	return series, nil
}

func (s *salesMetricsService) GetTopCountries(filters models.OrderFilters, limit int) ([]analytics.RankingEntry, error) {
	limit, err := normalizeRankingLimit(limit)
	if err != nil {
		return nil, err
	}

	orders, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	return analytics.TopCountries(orders, limit), nil
}

func (s *salesMetricsService) GetTopProducts(filters models.OrderFilters, limit int) ([]analytics.RankingEntry, error) {
	limit, err := normalizeRankingLimit(limit)
	if err != nil {
		return nil, err
	}

	orders, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	return analytics.TopProducts(orders, limit), nil
}

func (s *salesMetricsService) fetchFiltered(filters models.OrderFilters) ([]models.Order, error) {
	if filters.HasDateRange() && filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	orders, err := s.orderRepo.GetAllFiltered(filters)
	if err != nil {
		slog.Error("failed to fetch orders for metrics",
			"countries", len(filters.Countries),
			"products", len(filters.Products),
			"error", err)
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// normalizeRankingLimit applies the default and rejects out-of-range values.
// Zero means "not specified".
func normalizeRankingLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultRankingLimit, nil
	}
	if limit < 1 || limit > MaxRankingLimit {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}
