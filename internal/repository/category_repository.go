package repository

import (
	"mscategory/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository GenericRepository[models.Category]

type CategoryLabelRepository LabelRepository[models.Category]

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return NewGenericRepository[models.Category](db)
}

func NewCategoryLabelRepository(db *gorm.DB) CategoryLabelRepository {
	return NewLabelRepository[models.Category](db, models.CategoryLabelColumn)
}
