package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingOrderRef   = errors.New("order reference is required")
	ErrMissingCustomerID = errors.New("customer ID is required")
	ErrMissingOccurredAt = errors.New("order timestamp is required")
	ErrCountryTooLong    = errors.New("country name too long")
	ErrProductTooLong    = errors.New("product name too long")
)

// Order represents a single order line from the sales ledger. Multi-line
// orders share the same OrderRef, so order-level counts must deduplicate
// on that column.
type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderRef   string          `gorm:"type:varchar(50);not null;index" json:"order_ref"`
	CustomerID string          `gorm:"type:varchar(50);not null;index" json:"customer_id"`
	Country    string          `gorm:"type:varchar(100);index" json:"country,omitempty"`
	Product    string          `gorm:"type:varchar(255)" json:"product,omitempty"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	now := time.Now()

	// Set timestamps if not already set (for tests)
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	return o.Validate()
}

// BeforeUpdate hook for Order
func (o *Order) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = time.Now()
	return o.Validate()
}

// Validate validates the order line fields. Amount is deliberately
// unconstrained in sign: returns and credit notes arrive as negative lines
// and must be kept so monetary sums stay honest.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.OrderRef) == "" {
		return ErrMissingOrderRef
	}

	if strings.TrimSpace(o.CustomerID) == "" {
		return ErrMissingCustomerID
	}

	if o.OccurredAt.IsZero() {
		return ErrMissingOccurredAt
	}

	if len(o.Country) > 100 {
		return ErrCountryTooLong
	}

	if len(o.Product) > 255 {
		return ErrProductTooLong
	}

	return nil
}

// IsReturn reports whether this line reverses revenue
func (o *Order) IsReturn() bool {
	return o.Amount.IsNegative()
}

// TableName returns the table name for Order
func (o *Order) TableName() string {
	return "orders"
}

// GenerateOrderRef generates a unique order reference
func GenerateOrderRef() string {
	return "INV-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102")
}
