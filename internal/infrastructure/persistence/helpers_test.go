package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockGormDB opens gorm on top of sqlmock using the postgres dialect
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

// newSQLiteDB opens a private in-memory SQLite database with the schema applied
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func mustBakery(t *testing.T, name string, goods ...*bakery.BakedGood) *bakery.Bakery {
	t.Helper()
	b, err := bakery.NewBakery(name)
	require.NoError(t, err)
	for _, g := range goods {
		b.AddBakedGood(*g)
	}
	return b
}

func mustGood(t *testing.T, name, price string, bakeryID *int64) *bakery.BakedGood {
	t.Helper()
	g, err := bakery.NewBakedGood(name, decimal.RequireFromString(price), bakeryID)
	require.NoError(t, err)
	return g
}

func seed(t *testing.T, db *gorm.DB, data SeedData) {
	t.Helper()
	require.NoError(t, NewSeeder(&Database{DB: db}).Seed(context.Background(), data))
}

func int64Ptr(v int64) *int64 {
	return &v
}
