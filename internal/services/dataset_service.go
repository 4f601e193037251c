package services

import (
	"fmt"
	"log/slog"
	"time"

	"commerce-insights/internal/dto"
	"commerce-insights/internal/models"
	"commerce-insights/internal/repositories"
)

const (
	DefaultGeneratedCustomers = 150
	DefaultGeneratedOrders    = 2000
	defaultGenerationSpanDays = 365
	dateOnlyLayout            = "2006-01-02"
)

type datasetService struct {
	orderRepo    repositories.OrderRepositoryInterface
	newGenerator func(seed int64) OrderGeneratorInterface
	batchSize    int
	metrics      MetricsRecorderInterface
}

// NewDatasetService creates a service that rebuilds the development
// dataset. The generator factory is called per request so a caller-supplied
// seed reproduces the exact same ledger.
func NewDatasetService(
	orderRepo repositories.OrderRepositoryInterface,
	newGenerator func(seed int64) OrderGeneratorInterface,
	batchSize int,
	metrics MetricsRecorderInterface,
) DatasetServiceInterface {
	return &datasetService{
		orderRepo:    orderRepo,
		newGenerator: newGenerator,
		batchSize:    batchSize,
		metrics:      metrics,
	}
}

// RegenerateDataset wipes the orders table and fills it with generated
// ledger lines. Existing data is gone once this returns, so routing must
// keep it out of production builds.
func (s *datasetService) RegenerateDataset(req *dto.GenerateDataRequest) (*dto.GenerateDataSummary, error) {
	start := time.Now()

	customerCount := req.Customers
	if customerCount <= 0 {
		customerCount = DefaultGeneratedCustomers
	}
	orderCount := req.Orders
	if orderCount <= 0 {
		orderCount = DefaultGeneratedOrders
	}

	startDate, endDate, err := s.resolveDateRange(req)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	deleted, err := s.orderRepo.DeleteAll()
	if err != nil {
		slog.Error("failed to clear orders before regeneration", "error", err)
		return nil, fmt.Errorf("failed to clear orders: %w", err)
	}

	generator := s.newGenerator(seed)
	lines := generator.GenerateOrders(startDate, endDate, customerCount, orderCount)

	if len(lines) > 0 {
		if err := s.orderRepo.CreateBatch(lines, s.batchSize); err != nil {
			slog.Error("failed to insert generated orders", "error", err, "lines", len(lines))
			return nil, fmt.Errorf("failed to insert generated orders: %w", err)
		}
	}

	summary := &dto.GenerateDataSummary{
		DeletedLines:  deleted,
		Customers:     customerCount,
		Orders:        countDistinctRefs(lines),
		LinesInserted: len(lines),
		ElapsedMs:     time.Since(start).Milliseconds(),
	}
	if len(lines) > 0 {
		summary.FirstOccurred = lines[0].OccurredAt
		summary.LastOccurred = lines[len(lines)-1].OccurredAt
	}

	s.metrics.IncrementCounter("dataset_regenerated", nil)
	s.metrics.RecordGauge("dataset.lines", float64(len(lines)), nil)
	s.metrics.RecordProcessingTime("dataset.generation", time.Since(start))

	slog.Info("development dataset regenerated",
		"deleted_lines", deleted,
		"customers", customerCount,
		"orders", summary.Orders,
		"lines_inserted", len(lines),
		"seed", seed,
		"duration_ms", summary.ElapsedMs)

	return summary, nil
}

// resolveDateRange applies the default one-year window when the request
// leaves either bound empty
func (s *datasetService) resolveDateRange(req *dto.GenerateDataRequest) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	startDate := now.AddDate(0, 0, -defaultGenerationSpanDays)
	endDate := now

	if req.StartDate != "" {
		parsed, err := time.Parse(dateOnlyLayout, req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		startDate = parsed
	}
	if req.EndDate != "" {
		parsed, err := time.Parse(dateOnlyLayout, req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		// Stretch to the end of the day so single-day ranges still
		// leave room for timestamps.
		endDate = parsed.Add(24*time.Hour - time.Second)
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return startDate, endDate, nil
}

func countDistinctRefs(lines []models.Order) int {
	refs := make(map[string]bool, len(lines))
	for _, line := range lines {
		refs[line.OrderRef] = true
	}
	return len(refs)
}
