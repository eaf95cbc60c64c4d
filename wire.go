//go:build wireinject
// +build wireinject

package main

import (
	"mscategory/cmd"
	"mscategory/internal/config"
	"mscategory/internal/handlers"
	"mscategory/internal/metrics"
	"mscategory/internal/repository"
	"mscategory/internal/services"

	"github.com/google/wire"
)

func InitializeServer(configurationFile string) (*cmd.Server, func(), error) {
	wire.Build(
		cmd.NewServer,
		config.LoadConfiguration,
		ProvideDatabase,
		repository.NewCategoryRepository,
		repository.NewCategoryLabelRepository,
		services.NewLogService,
		services.NewCategoryService,
		handlers.NewCategoryHandler,
		services.NewHealthMonitor,
		handlers.NewHealthHandler,
		metrics.NewCollector,
	)
	return nil, nil, nil
}
