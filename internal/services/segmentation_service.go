package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"commerce-insights/internal/analytics"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
)

var (
	ErrInvalidSegment = errors.New("unknown segment label")
)

type segmentationService struct {
	orderRepo repositories.OrderRepositoryInterface
	metrics   MetricsRecorderInterface
}

func NewSegmentationService(
	orderRepo repositories.OrderRepositoryInterface,
	metrics MetricsRecorderInterface,
) SegmentationServiceInterface {
	return &segmentationService{
		orderRepo: orderRepo,
		metrics:   metrics,
	}
}

func (s *segmentationService) GetScoredCustomers(filters models.OrderFilters, segment string) ([]analytics.ScoredCustomer, error) {
	if segment != "" && !analytics.IsValidSegment(segment) {
		return nil, ErrInvalidSegment
	}

	scored, err := s.scorePopulation(filters)
	if err != nil {
		return nil, err
	}

	if segment == "" {
		return scored, nil
	}

	filtered := make([]analytics.ScoredCustomer, 0, len(scored))
	for i := range scored {
		if scored[i].Segment == segment {
			filtered = append(filtered, scored[i])
		}
	}
	return filtered, nil
}

func (s *segmentationService) GetCompositeHistogram(filters models.OrderFilters) ([]analytics.HistogramBin, error) {
	scored, err := s.scorePopulation(filters)
	if err != nil {
		return nil, err
	}

	return analytics.CompositeHistogram(scored), nil
}

func (s *segmentationService) GetSegmentDistribution(filters models.OrderFilters) ([]analytics.SegmentSummary, error) {
	scored, err := s.scorePopulation(filters)
	if err != nil {
		return nil, err
	}

	return analytics.SegmentSummaries(scored), nil
}

// scorePopulation runs the full pipeline: fetch the filtered order lines in
// their canonical order, roll them up per customer against the dataset
// snapshot, then rank and bucket the population.
func (s *segmentationService) scorePopulation(filters models.OrderFilters) ([]analytics.ScoredCustomer, error) {
	if filters.HasDateRange() && filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	orders, err := s.orderRepo.GetAllFiltered(filters)
	if err != nil {
		slog.Error("failed to fetch orders for segmentation",
			"countries", len(filters.Countries),
			"products", len(filters.Products),
			"error", err)
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	start := time.Now()
	aggregates := analytics.Aggregate(orders, analytics.DefaultSnapshot(orders))
	scored := analytics.Score(aggregates)
	elapsed := time.Since(start)

	s.metrics.RecordProcessingTime("segmentation.scoring", elapsed)
	s.metrics.RecordGauge("segmentation.population", float64(len(scored)), nil)

	slog.Info("customer population scored",
		"order_lines", len(orders),
		"customers", len(scored),
		"duration_ms", elapsed.Milliseconds())

	return scored, nil
}
