package api

import (
	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/smartoffice/internal/api/middleware"
	v1 "github.com/liliang-cn/smartoffice/internal/api/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
	MetricsPath  string // empty disables the metrics endpoint
}

// SetupRouter sets up the Gin router
func SetupRouter(handler *v1.Handler, logger *zap.Logger, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Service descriptor
	r.GET("/", handler.Root)

	if cfg.MetricsPath != "" {
		r.GET(cfg.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	return r
}
