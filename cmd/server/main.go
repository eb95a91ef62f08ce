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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"casafinder/internal/catalog"
	"casafinder/internal/config"
	"casafinder/internal/handler"
	"casafinder/internal/logging"
	"casafinder/internal/metrics"
	"casafinder/internal/repository"
	"casafinder/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("casafinder starting",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	gin.SetMode(cfg.Server.GinMode)

	// The search trail is optional: without database credentials the
	// server answers searches but keeps no history.
	var repo *repository.PostgresRepository
	var logs service.SearchLogger
	if cfg.PostgreSQL.Enabled {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer repo.Close()
		logs = repo
		logger.Info("connected to PostgreSQL, search logging enabled")
	} else {
		logger.Warn("no database configured, search logging disabled")
	}

	searchMetrics := metrics.NewSearchMetrics()

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:          cfg.Catalog.BaseURL,
		Timeout:          cfg.Catalog.Timeout,
		RetryMaxAttempts: cfg.Catalog.RetryMaxAttempts,
		RetryBackoff:     cfg.Catalog.RetryBackoff,
		RatePerSecond:    cfg.Catalog.RatePerSecond,
		RateBurst:        cfg.Catalog.RateBurst,
	}, logger)

	searchService := service.NewHouseSearch(catalogClient, logs, searchMetrics, logger)

	chatHandler := handler.NewChatHandler(searchService)
	searchHandler := handler.NewSearchHandler(searchService)
	feedbackHandler := handler.NewFeedbackHandler(searchService)

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "casafinder",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})
	router.GET("/metrics", gin.WrapH(searchMetrics.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.POST("/search", searchHandler.Search)
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}
