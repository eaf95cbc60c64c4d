package routers

import (
	"mscategory/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRouter(router fiber.Router, server *cmd.Server) {
	categoryHandler := server.CategoryHandler
	router.Get("/categorias", categoryHandler.FindAll)
	router.Get("/categorias/page", categoryHandler.FindPage)
	router.Post("/categorias", categoryHandler.Create)
	router.Get("/categoria/:id", categoryHandler.GetByID)
	router.Put("/categoria/:id", categoryHandler.Update)
	router.Delete("/categoria/:id", categoryHandler.Delete)
}
