package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/wes-io-live/devid-service/internal/config"
	"github.com/weiawesome/wes-io-live/devid-service/internal/domain"
	"github.com/weiawesome/wes-io-live/devid-service/internal/generator"
	"github.com/weiawesome/wes-io-live/devid-service/internal/handler"
	"github.com/weiawesome/wes-io-live/devid-service/internal/repository"
	"github.com/weiawesome/wes-io-live/devid-service/internal/service"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/database"
	pkglog "github.com/weiawesome/wes-io-live/devid-service/pkg/log"
	"github.com/weiawesome/wes-io-live/devid-service/pkg/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "devid-service",
	})
	logger := pkglog.L()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db, &domain.BatchModel{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Str("driver", cfg.Database.Driver).Msg("database migration completed")

	// Initialize batch object storage
	ctx := context.Background()
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("storage initialized")

	// Initialize generators and service
	imeiGen := generator.NewIMEIGenerator()
	iccidGen := generator.NewICCIDGenerator()
	batchRepo := repository.NewGormBatchRepository(db)
	codec := service.NewCodecService(imeiGen, iccidGen, batchRepo, store, cfg.Batch.MaxCount)

	httpHandler := handler.NewHandler(codec)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Int("batch_max_count", cfg.Batch.MaxCount).Msg("devid-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down devid-service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("devid-service stopped")
}
