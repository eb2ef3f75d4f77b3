package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mzafran/zakat_tracker_app/internal/adapters/store/memory"
	"github.com/mzafran/zakat_tracker_app/internal/core/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/mzafran/zakat_tracker_app/internal/handlers"
	"github.com/mzafran/zakat_tracker_app/internal/middleware"
	"github.com/mzafran/zakat_tracker_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Zakat Tracker API
// @version 1.0
// @description Computation backend for tracking zakat obligations, payments and reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Register the custom date binding validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("dateformat", dto.ValidateDateFormat); err != nil {
			logger.Error("Failed to register date validation", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := memory.NewRepositoryProvider()
	container := services.NewServiceContainer(repos)

	// Apply nisab weight overrides before serving anything
	if cfg.GoldNisabOz.Sign() > 0 || cfg.SilverNisabOz.Sign() > 0 {
		ctx := context.Background()
		current, err := container.Settings.GetSettings(ctx)
		if err != nil {
			logger.Error("Failed to read settings for nisab override", slog.String("error", err.Error()))
			os.Exit(1)
		}
		goldOz, silverOz := cfg.GoldNisabOz, cfg.SilverNisabOz
		if goldOz.Sign() <= 0 {
			goldOz = current.GoldNisabOz
		}
		if silverOz.Sign() <= 0 {
			silverOz = current.SilverNisabOz
		}
		if _, err := container.Settings.SetNisabOz(ctx, goldOz, silverOz); err != nil {
			logger.Error("Failed to apply nisab override", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermemory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
