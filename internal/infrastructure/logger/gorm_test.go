package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func sqlFunc(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs errors with request id", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Warn)
		ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-9")

		l.Trace(ctx, time.Now(), sqlFunc("SELECT 1", 0), errors.New("boom"))

		entries := recorded.FilterMessage("SQL Error").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	})

	t.Run("ignores record not found by default", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Warn)

		l.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 0), gormlogger.ErrRecordNotFound)

		assert.Equal(t, 0, recorded.Len())
	})

	t.Run("logs record not found when configured", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Warn, WithIgnoreRecordNotFoundError(false))

		l.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 0), gormlogger.ErrRecordNotFound)

		assert.Equal(t, 1, recorded.FilterMessage("SQL Error").Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(10*time.Millisecond))

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc("SELECT * FROM bakeries", 3), nil)

		entries := recorded.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Contains(t, entries[0].Message, "SLOW SQL")
	})

	t.Run("logs every query at info", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Info)

		l.Trace(context.Background(), time.Now(), sqlFunc("SELECT * FROM baked_goods", 2), nil)

		entries := recorded.FilterMessage("SQL Query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(2), entries[0].ContextMap()["rows"])
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, recorded := newObservedGormLogger(gormlogger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFunc("SELECT 1", 0), errors.New("boom"))

		assert.Equal(t, 0, recorded.Len())
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	l, recorded := newObservedGormLogger(gormlogger.Silent)

	verbose := l.LogMode(gormlogger.Info)
	verbose.Info(context.Background(), "migrated %d tables", 2)
	l.Info(context.Background(), "ignored")

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "migrated 2 tables", entries[0].Message)
}

func TestGormLogger_ParamsFilter(t *testing.T) {
	params := []any{int64(3), "Sourdough"}

	l := NewGormLogger(zap.NewNop(), gormlogger.Info)
	sql, got := l.ParamsFilter(context.Background(), "SELECT * FROM baked_goods WHERE id = ?", params...)
	assert.Equal(t, "SELECT * FROM baked_goods WHERE id = ?", sql)
	assert.Equal(t, params, got)

	l = NewGormLogger(zap.NewNop(), gormlogger.Info, WithParameterizedQueries(true))
	_, got = l.ParamsFilter(context.Background(), "SELECT 1", params...)
	assert.Nil(t, got)
}

func TestMapGormLogLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"fatal":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
		"debug":  gormlogger.Info,
		"other":  gormlogger.Warn,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, MapGormLogLevel(input), input)
	}
}
