package repositories

import (
	"commerce-insights/internal/models"

	"github.com/google/uuid"
)

// OrderRepositoryInterface defines the contract for order repository operations
type OrderRepositoryInterface interface {
	Create(order *models.Order) error
	CreateBatch(orders []models.Order, batchSize int) error
	GetByID(id uuid.UUID) (*models.Order, error)
	GetByOrderRef(orderRef string) ([]models.Order, error)
	GetWithFilters(filters models.OrderFilters) ([]models.Order, int64, error)
	GetAllFiltered(filters models.OrderFilters) ([]models.Order, error)
	GetFacets() (*models.DatasetFacets, error)
	CountAll() (int64, error)
	DeleteAll() (int64, error)
}
