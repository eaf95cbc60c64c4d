package cmd

import (
	"mscategory/internal/config"
	"mscategory/internal/handlers"
	"mscategory/internal/metrics"
	"mscategory/internal/services"
)

type Server struct {
	CategoryService services.CategoryService
	CategoryHandler *handlers.CategoryHandler
	HealthMonitor   *services.HealthMonitor
	HealthHandler   *handlers.HealthHandler
	LogService      services.LogService
	Metrics         *metrics.Collector
	Configuration   *config.Configuration
}

func NewServer(
	categoryService services.CategoryService,
	categoryHandler *handlers.CategoryHandler,
	healthMonitor *services.HealthMonitor,
	healthHandler *handlers.HealthHandler,
	logService services.LogService,
	collector *metrics.Collector,
	configuration *config.Configuration,
) *Server {
	return &Server{
		CategoryService: categoryService,
		CategoryHandler: categoryHandler,
		HealthMonitor:   healthMonitor,
		HealthHandler:   healthHandler,
		LogService:      logService,
		Metrics:         collector,
		Configuration:   configuration,
	}
}
