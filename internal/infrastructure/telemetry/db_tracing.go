package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool          // include query variables in spans
	SlowQueryThresh time.Duration // queries slower than this are flagged on their span
	DBName          string
	// TracerProvider overrides the global provider; nil uses otel's global.
	TracerProvider trace.TracerProvider
}

// DBTracingPlugin registers otelgorm and flags slow statements on its spans.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a new database tracing plugin
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	return &DBTracingPlugin{config: cfg, logger: logger}
}

type gormRegister interface {
	Register(name string, fn func(*gorm.DB)) error
}

type queryStartKey struct{}

// Register installs otelgorm plus the timing callbacks on db. It is a no-op
// when tracing is disabled.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName(p.config.DBName),
		otelgorm.WithoutMetrics(),
	}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if p.config.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(p.config.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return fmt.Errorf("register otelgorm: %w", err)
	}

	cb := db.Callback()
	hooks := []struct {
		callback gormRegister
		hook     func(*gorm.DB)
		name     string
	}{
		{cb.Create().Before("gorm:create"), markStart, "before_create"},
		{cb.Create().After("gorm:create").Before("otel:after:create"), p.flagSlow, "after_create"},
		{cb.Query().Before("gorm:query"), markStart, "before_query"},
		{cb.Query().After("gorm:query").Before("otel:after:select"), p.flagSlow, "after_query"},
		{cb.Delete().Before("gorm:delete"), markStart, "before_delete"},
		{cb.Delete().After("gorm:delete").Before("otel:after:delete"), p.flagSlow, "after_delete"},
		{cb.Row().Before("gorm:row"), markStart, "before_row"},
		{cb.Row().After("gorm:row").Before("otel:after:row"), p.flagSlow, "after_row"},
		{cb.Raw().Before("gorm:raw"), markStart, "before_raw"},
		{cb.Raw().After("gorm:raw").Before("otel:after:raw"), p.flagSlow, "after_raw"},
	}

	var errs []error
	for _, h := range hooks {
		if err := h.callback.Register("bakery_timing:"+h.name, h.hook); err != nil {
			errs = append(errs, fmt.Errorf("callback %s: %w", h.name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
	)
	return nil
}

func markStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
	}
}

// flagSlow annotates the active statement span with the table name, and with
// a slow_query event when the threshold was exceeded.
func (p *DBTracingPlugin) flagSlow(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}
	if elapsed := time.Since(start); elapsed > p.config.SlowQueryThresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
		))
	}
}
