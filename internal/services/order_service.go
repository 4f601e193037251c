package services

import (
	"fmt"
	"log/slog"

	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

type orderService struct {
	orderRepo repositories.OrderRepositoryInterface
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface) OrderServiceInterface {
	return &orderService{
		orderRepo: orderRepo,
	}
}

func (s *orderService) ListOrders(filters models.OrderFilters) ([]models.Order, int64, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultPageSize
	}
	if filters.Limit > MaxPageSize {
		filters.Limit = MaxPageSize
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	if filters.HasDateRange() && filters.StartDate.After(*filters.EndDate) {
		return nil, 0, ErrInvalidDateRange
	}

	orders, total, err := s.orderRepo.GetWithFilters(filters)
	if err != nil {
		slog.Error("failed to list orders",
			"countries", len(filters.Countries),
			"products", len(filters.Products),
			"error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

func (s *orderService) GetOrder(orderRef string) ([]models.Order, error) {
	if orderRef == "" {
		return nil, repositories.ErrOrderNotFound
	}

	lines, err := s.orderRepo.GetByOrderRef(orderRef)
	if err != nil {
		if err == repositories.ErrOrderNotFound {
			return nil, err
		}
		slog.Error("failed to get order lines",
			"order_ref", orderRef,
			"error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return lines, nil
}

func (s *orderService) GetFacets() (*models.DatasetFacets, error) {
	facets, err := s.orderRepo.GetFacets()
	if err != nil {
		slog.Error("failed to get dataset facets", "error", err)
		return nil, fmt.Errorf("failed to get dataset facets: %w", err)
	}

	return facets, nil
}
