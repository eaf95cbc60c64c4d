package server

import (
	"mscategory/cmd"
	"mscategory/internal/handlers"
	"mscategory/internal/routers"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber application with every route registered. Listening
// is left to the caller.
func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency:  cfg.Server.Concurrency * 1024,
		AppName:      "mscategory",
		ErrorHandler: handlers.ErrorHandler,
	})

	routers.SetupRoutes(app, server)
	return app
}
