package services

import (
	"path/filepath"
	"testing"

	"hotel-booking/config"
	"hotel-booking/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a throwaway sqlite database with the full schema. A file (not
// :memory:) so the concurrency tests exercise real cross-connection writes.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=10000&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:     "Test Customer",
		Email:    email,
		Phone:    "0123456789",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, price float64) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		RoomType:      models.RoomTypeDouble,
		PricePerNight: price,
		IsAvailable:   true,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}
