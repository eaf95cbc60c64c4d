package handlers

import (
	"mscategory/internal/models"
	"mscategory/internal/services"
)

type CategoryHandler struct {
	*EntityHandler[models.Category]
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{EntityHandler: NewEntityHandler[models.Category](service)}
}
