package main

import (
	"flag"
	"fmt"
	"log"
	"mscategory/database"
	"mscategory/internal/config"
	appserver "mscategory/internal/server"
	"mscategory/internal/services"

	"gorm.io/gorm"
)

func main() {
	configurationFile := flag.String("config", config.DefaultConfigurationFile, "path to the yaml configuration")
	flag.Parse()

	server, cleanup, err := InitializeServer(*configurationFile)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	defer cleanup()

	if err := server.HealthMonitor.Start(); err != nil {
		log.Fatalf("Failed to start health monitor: %v", err)
	}
	defer server.HealthMonitor.Stop()

	cfg := server.Configuration
	app := appserver.NewApp(server)

	server.LogService.Log.Infof("listening on :%d", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		server.LogService.Log.Errorf("Failed to start server: %v", err)
	}
}

func ProvideDatabase(cfg *config.Configuration, logService services.LogService) (*gorm.DB, func(), error) {
	db, err := database.SetupDatabase(cfg, logService)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { database.CloseDatabase(db) }, nil
}
