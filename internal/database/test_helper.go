package database

import (
	"testing"
	"time"

	"commerce-insights/internal/config"
	"commerce-insights/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestOrder(t *testing.T, db *DB, customerID, country string, amount string, occurredAt time.Time) *models.Order {
	t.Helper()

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	order := &models.Order{
		OrderRef:   models.GenerateOrderRef(),
		CustomerID: customerID,
		Country:    country,
		Product:    "WHITE HANGING HEART T-LIGHT HOLDER",
		Quantity:   1,
		Amount:     amt,
		OccurredAt: occurredAt,
	}

	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test order: %v", err)
	}

	return order
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM orders").Error; err != nil {
		t.Logf("failed to cleanup orders table: %v", err)
	}
}
