package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bakery/backend/internal/infrastructure/config"
	"github.com/bakery/backend/internal/infrastructure/logger"
	"github.com/bakery/backend/internal/infrastructure/migration"
	"github.com/bakery/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		runMigrations bool
		reset         bool
		logLevel      string
	)

	flag.BoolVar(&runMigrations, "migrate", true, "Apply pending migrations before seeding")
	flag.BoolVar(&reset, "reset", false, "Delete existing bakeries and baked goods first")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	db, err := persistence.NewDatabase(ctx, &cfg.Database,
		persistence.WithLogger(logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if runMigrations {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal("Failed to get sql.DB", zap.Error(err))
		}
		// Not closed: closing the migrator closes the shared sql.DB.
		m, err := migration.New(sqlDB, cfg.Database.Driver, log)
		if err != nil {
			log.Fatal("Failed to create migrator", zap.Error(err))
		}
		if err := m.Up(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
	}

	seeder := persistence.NewSeeder(db)
	if reset {
		log.Warn("Deleting existing bakeries and baked goods")
		if err := seeder.Reset(ctx); err != nil {
			log.Fatal("Reset failed", zap.Error(err))
		}
	}

	data, err := persistence.SampleData()
	if err != nil {
		log.Fatal("Failed to build sample data", zap.Error(err))
	}
	if err := seeder.Seed(ctx, data); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	goods := 0
	for _, b := range data.Bakeries {
		goods += b.BakedGoodCount()
	}
	log.Info("Database seeded",
		zap.Int("bakeries", len(data.Bakeries)),
		zap.Int("baked_goods", goods+len(data.LooseGoods)),
	)
}
