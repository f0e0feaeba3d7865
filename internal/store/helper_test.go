package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/orderdash/internal/database"
	"github.com/example/orderdash/internal/models"
)

// newTestStore opens a throwaway sqlite database with the production schema.
func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store_test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps session pragmas effective for the whole test.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return New(db, 5*time.Second), db
}

func date(daysAgo int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysAgo)
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string, createdAt time.Time) models.Customer {
	t.Helper()

	customer := models.Customer{
		Name:      name,
		Email:     email,
		Country:   "Canada",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedOrder(t *testing.T, db *gorm.DB, customerID int64, total float64, status string, orderDate time.Time) models.Order {
	t.Helper()

	order := models.Order{
		CustomerID:    customerID,
		OrderDate:     orderDate,
		Total:         total,
		Status:        status,
		PaymentMethod: "credit_card",
		CreatedAt:     orderDate,
		UpdatedAt:     orderDate,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

// seedBaseScenario inserts the canonical fixture: customer A with two
// completed orders totaling 389.98 and customer B with one pending 149.50.
func seedBaseScenario(t *testing.T, db *gorm.DB) (models.Customer, models.Customer) {
	t.Helper()

	a := seedCustomer(t, db, "Alice Anderson", "alice@example.com", date(10))
	b := seedCustomer(t, db, "Bob Brown", "bob@example.com", date(5))

	seedOrder(t, db, a.ID, 249.99, string(models.StatusCompleted), date(8))
	seedOrder(t, db, a.ID, 139.99, string(models.StatusCompleted), date(4))
	seedOrder(t, db, b.ID, 149.50, string(models.StatusPending), date(2))

	return a, b
}
