package services

import (
	"context"
	"io"
	"time"

	"commerce-insights/internal/analytics"
	"commerce-insights/internal/dto"
	"commerce-insights/internal/models"
)

// OrderServiceInterface defines order listing and dataset lookup operations
type OrderServiceInterface interface {
	ListOrders(filters models.OrderFilters) ([]models.Order, int64, error)
	GetOrder(orderRef string) ([]models.Order, error)
	GetFacets() (*models.DatasetFacets, error)
}

// SalesMetricsServiceInterface computes aggregate sales figures over the
// filtered dataset
type SalesMetricsServiceInterface interface {
	GetSummary(filters models.OrderFilters) (*analytics.SalesSummary, error)
	GetRevenueSeries(filters models.OrderFilters, granularity analytics.Granularity) ([]analytics.RevenueBucket, error)
	GetTopCountries(filters models.OrderFilters, limit int) ([]analytics.RankingEntry, error)
	GetTopProducts(filters models.OrderFilters, limit int) ([]analytics.RankingEntry, error)
}

// SegmentationServiceInterface runs the customer scoring pipeline
type SegmentationServiceInterface interface {
	GetScoredCustomers(filters models.OrderFilters, segment string) ([]analytics.ScoredCustomer, error)
	GetCompositeHistogram(filters models.OrderFilters) ([]analytics.HistogramBin, error)
	GetSegmentDistribution(filters models.OrderFilters) ([]analytics.SegmentSummary, error)
}

// ImportServiceInterface ingests order ledger files
type ImportServiceInterface interface {
	ImportCSV(ctx context.Context, reader io.Reader) (*dto.ImportSummary, error)
}

// OrderGeneratorInterface generates realistic order data for development
type OrderGeneratorInterface interface {
	GenerateOrders(startDate, endDate time.Time, customerCount, orderCount int) []models.Order
	GenerateCustomerIDs(count int) []string
	SelectCountry() string
	SelectProduct() (name string, unitPrice float64)
	GenerateLineCount() int
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

// DatasetServiceInterface rebuilds the development dataset
type DatasetServiceInterface interface {
	RegenerateDataset(req *dto.GenerateDataRequest) (*dto.GenerateDataSummary, error)
}

type AuthServiceInterface interface {
	IssueToken(req *dto.TokenRequest) (*dto.TokenResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(clientID string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
