// Package server assembles the gin engine and the HTTP server.
package server

import (
	"fmt"
	"net/http"

	bakeryapp "github.com/bakery/backend/internal/application/bakery"
	"github.com/bakery/backend/internal/infrastructure/config"
	"github.com/bakery/backend/internal/infrastructure/logger"
	"github.com/bakery/backend/internal/infrastructure/persistence"
	"github.com/bakery/backend/internal/infrastructure/telemetry"
	"github.com/bakery/backend/internal/interfaces/http/dto"
	"github.com/bakery/backend/internal/interfaces/http/handler"
	"github.com/bakery/backend/internal/interfaces/http/middleware"
	"github.com/bakery/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthPath = "/health"

// Options carries everything NewEngine wires together. Metrics may be nil.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *persistence.Database
	Metrics *telemetry.Metrics
}

// NewEngine builds the gin engine with middleware, the bakery routes and
// the operational endpoints.
func NewEngine(opts Options) (*gin.Engine, error) {
	cfg := opts.Config
	log := opts.Logger

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return nil, fmt.Errorf("set trusted proxies: %w", err)
		}
	}

	corsMiddleware, err := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        middleware.DefaultCORSConfig().MaxAge,
	})
	if err != nil {
		return nil, err
	}

	skipPaths := []string{healthPath}
	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = opts.Metrics
		skipPaths = append(skipPaths, cfg.Metrics.Path)
	}

	// Order matters: the request ID feeds tracing and logging, and the span
	// must exist before the request logger reads its trace ID.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
		SkipPaths:   skipPaths,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log, skipPaths...))
	engine.Use(middleware.Metrics(metrics, skipPaths...))
	engine.Use(middleware.Secure())
	engine.Use(corsMiddleware)

	base := handler.NewBaseHandler(cfg.App.PrettyJSON)

	bakeryHandler := handler.NewBakeryHandler(base,
		bakeryapp.NewBakeryService(persistence.NewGormBakeryRepository(opts.DB.DB)))
	bakedGoodHandler := handler.NewBakedGoodHandler(base,
		bakeryapp.NewBakedGoodService(persistence.NewGormBakedGoodRepository(opts.DB.DB)))
	healthHandler := handler.NewHealthHandler(base, opts.DB)

	bakeryRoutes := router.NewDomainGroup("bakeries", "/bakeries")
	bakeryRoutes.GET("", bakeryHandler.List)
	bakeryRoutes.GET("/:id", bakeryHandler.GetByID)

	bakedGoodRoutes := router.NewDomainGroup("baked_goods", "/baked_goods")
	bakedGoodRoutes.GET("/by_price", bakedGoodHandler.ListByPrice)
	bakedGoodRoutes.GET("/most_expensive", bakedGoodHandler.MostExpensive)

	r := router.NewRouter(engine)
	r.Register(bakeryRoutes).Register(bakedGoodRoutes)
	r.Setup()

	engine.GET("/", handler.Index)
	engine.HEAD("/", handler.Index)
	engine.GET(healthPath, healthHandler.Check)
	if metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	engine.NoRoute(func(c *gin.Context) {
		base.Message(c, http.StatusNotFound, dto.MsgNotFound)
	})
	engine.NoMethod(func(c *gin.Context) {
		base.Message(c, http.StatusMethodNotAllowed, dto.MsgMethodNotAllowed)
	})

	for _, g := range []*router.DomainGroup{bakeryRoutes, bakedGoodRoutes} {
		for _, p := range g.Paths() {
			log.Debug("Route registered", zap.String("group", g.Name()), zap.String("path", p))
		}
	}

	return engine, nil
}

// NewHTTPServer wraps handler in an http.Server using the configured timeouts
func NewHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        h,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}
}
