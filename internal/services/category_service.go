package services

import (
	"mscategory/internal/models"
	"mscategory/internal/repository"
)

type CategoryService EntityService[models.Category]

func NewCategoryService(
	categoryRepository repository.CategoryRepository,
	labelRepository repository.CategoryLabelRepository,
	logService LogService,
) CategoryService {
	return NewEntityService[models.Category, *models.Category](categoryRepository, labelRepository, logService)
}
