package routers

import (
	"mscategory/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupHealthRouter(router fiber.Router, server *cmd.Server) {
	healthHandler := server.HealthHandler
	router.Get("/health", healthHandler.GetStatus)
	router.Post("/health/check", healthHandler.ForceCheck)
}
