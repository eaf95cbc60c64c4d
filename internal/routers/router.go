package routers

import (
	"mscategory/cmd"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const APIPrefix = "/api/v1"

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(cors.New())
	app.Use(server.Metrics.Middleware())

	api := app.Group(APIPrefix)
	SetupCategoryRouter(api, server)
	SetupHealthRouter(app, server)
	app.Get("/metrics", server.Metrics.Handler())
}
