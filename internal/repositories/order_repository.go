package repositories

import (
	"errors"
	"fmt"
	"time"

	"commerce-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// orderRepository implements OrderRepositoryInterface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order line
func (r *orderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// CreateBatch inserts order lines in chunks inside a single database transaction
func (r *orderRepository) CreateBatch(orders []models.Order, batchSize int) error {
	if len(orders) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&orders, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create batch orders: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an order line by ID
func (r *orderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	order := &models.Order{ID: id}
	if err := r.db.First(order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// GetByOrderRef retrieves every line belonging to one invoice
func (r *orderRepository) GetByOrderRef(orderRef string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("order_ref = ?", orderRef).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders by reference: %w", err)
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders, nil
}

// GetWithFilters retrieves a page of order lines, newest first
func (r *orderRepository) GetWithFilters(filters models.OrderFilters) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.applyFilters(r.db.Model(&models.Order{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered orders: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("occurred_at DESC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered orders: %w", err)
	}

	return orders, total, nil
}

// GetAllFiltered retrieves the full filtered dataset in chronological order.
// The ordering is total (occurred_at, then order_ref, then id) so the
// scoring pipeline sees the same sequence on every run.
func (r *orderRepository) GetAllFiltered(filters models.OrderFilters) ([]models.Order, error) {
	var orders []models.Order

	query := r.applyFilters(r.db.Model(&models.Order{}), filters)

	if err := query.Order("occurred_at ASC, order_ref ASC, id ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for analysis: %w", err)
	}

	return orders, nil
}

// GetFacets retrieves the distinct filter values and date bounds of the dataset
func (r *orderRepository) GetFacets() (*models.DatasetFacets, error) {
	facets := &models.DatasetFacets{
		Countries: []string{},
		Products:  []string{},
	}

	if err := r.db.Model(&models.Order{}).
		Where("country <> ''").
		Distinct().
		Order("country ASC").
		Pluck("country", &facets.Countries).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct countries: %w", err)
	}

	if err := r.db.Model(&models.Order{}).
		Where("product <> ''").
		Distinct().
		Order("product ASC").
		Pluck("product", &facets.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct products: %w", err)
	}

	var bounds struct {
		FirstOrder  *time.Time
		LastOrder   *time.Time
		TotalOrders int64
	}
	if err := r.db.Model(&models.Order{}).
		Select("MIN(occurred_at) as first_order, MAX(occurred_at) as last_order, COUNT(*) as total_orders").
		Scan(&bounds).Error; err != nil {
		return nil, fmt.Errorf("failed to get dataset bounds: %w", err)
	}

	facets.FirstOrder = bounds.FirstOrder
	facets.LastOrder = bounds.LastOrder
	facets.TotalOrders = bounds.TotalOrders

	return facets, nil
}

// CountAll returns the number of order lines in the dataset
func (r *orderRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return total, nil
}

// DeleteAll removes every order line and reports how many were deleted
func (r *orderRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Order{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete orders: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *orderRepository) applyFilters(query *gorm.DB, filters models.OrderFilters) *gorm.DB {
	if len(filters.Countries) > 0 {
		query = query.Where("country IN ?", filters.Countries)
	}
	if len(filters.Products) > 0 {
		query = query.Where("product IN ?", filters.Products)
	}
	if filters.CustomerID != "" {
		query = query.Where("customer_id = ?", filters.CustomerID)
	}
	if filters.StartDate != nil {
		query = query.Where("occurred_at >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("occurred_at <= ?", *filters.EndDate)
	}
	return query
}
