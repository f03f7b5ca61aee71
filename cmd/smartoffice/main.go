package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/smartoffice/internal/api"
	v1 "github.com/liliang-cn/smartoffice/internal/api/v1"
	"github.com/liliang-cn/smartoffice/internal/config"
	"github.com/liliang-cn/smartoffice/internal/logging"
	"github.com/liliang-cn/smartoffice/internal/repository"
	"github.com/liliang-cn/smartoffice/internal/service"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the fixed tables
	directory, err := repository.LoadEmployeeDirectory()
	if err != nil {
		logger.Fatal("Failed to load employee directory", zap.Error(err))
	}
	knowledge, err := repository.LoadKnowledgeBase()
	if err != nil {
		logger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	// Initialize chat log database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	dispatcher := service.NewDispatcher(directory, knowledge)
	chatService := service.NewChatService(cfg, dispatcher, historyRepo, logger)
	directoryService := service.NewDirectoryService(directory)
	statusService := service.NewStatusService(directory)

	// Setup router
	routerCfg := api.RouterConfig{AllowOrigins: cfg.CORS.AllowOrigins}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsPath = cfg.Metrics.Path
	}
	handler := v1.NewHandler(chatService, directoryService, statusService, logger)
	router := api.SetupRouter(handler, logger, routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting Smart Office Assistant",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
			zap.Int("employees", directory.Count()),
			zap.String("version", service.Version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
