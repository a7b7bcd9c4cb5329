//go:build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/domain/shared"
	"github.com/bakery/backend/internal/infrastructure/config"
	"github.com/bakery/backend/internal/infrastructure/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// newPostgresDatabase starts a throwaway PostgreSQL container with the
// embedded migrations applied
func newPostgresDatabase(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bakery_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewDatabase(ctx, &config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		DSN:          dsn,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	m, err := migration.New(sqlDB, config.DriverPostgres, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())

	return db
}

func TestPostgres_Repositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db := newPostgresDatabase(t)
	ctx := context.Background()

	data, err := SampleData()
	require.NoError(t, err)
	orphan := mustGood(t, "Mystery loaf", "5.00", int64Ptr(4242))
	data.LooseGoods = append(data.LooseGoods, orphan)
	require.NoError(t, NewSeeder(db).Seed(ctx, data))

	bakeryRepo := NewGormBakeryRepository(db.DB)
	goodRepo := NewGormBakedGoodRepository(db.DB)

	t.Run("bakeries load their goods", func(t *testing.T) {
		bakeries, err := bakeryRepo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, bakeries, 3)
		for _, b := range bakeries {
			assert.Len(t, b.BakedGoods, 2)
		}

		last := data.Bakeries[2]
		got, err := bakeryRepo.FindByID(ctx, last.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rise & Grind", got.Name)
		require.Len(t, got.BakedGoods, 2)
		assert.Equal(t, "7.5", got.BakedGoods[0].Price.String())

		_, err = bakeryRepo.FindByID(ctx, last.ID+100)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("goods ordered by price with dangling bakery", func(t *testing.T) {
		goods, err := goodRepo.FindAllByPriceDesc(ctx)
		require.NoError(t, err)
		require.Len(t, goods, 7)

		for i := 1; i < len(goods); i++ {
			assert.True(t, goods[i-1].Price.GreaterThanOrEqual(goods[i].Price))
		}

		var mystery *bakery.BakedGood
		for i := range goods {
			if goods[i].Name == "Mystery loaf" {
				mystery = &goods[i]
			}
		}
		require.NotNil(t, mystery)
		assert.True(t, mystery.IsOrphaned())
	})

	t.Run("most expensive", func(t *testing.T) {
		top, err := goodRepo.FindMostExpensive(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Sourdough", top.Name)
		require.NotNil(t, top.Bakery)
		assert.Equal(t, "Rise & Grind", top.Bakery.Name)
	})

	t.Run("reset empties both tables", func(t *testing.T) {
		require.NoError(t, NewSeeder(db).Reset(ctx))

		_, err := goodRepo.FindMostExpensive(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		bakeries, err := bakeryRepo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, bakeries)
	})
}
