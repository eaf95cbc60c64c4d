package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LabelRepositoryImpl[T any] struct {
	db     *gorm.DB
	column string
}

func NewLabelRepository[T any](db *gorm.DB, column string) LabelRepository[T] {
	return &LabelRepositoryImpl[T]{db: db, column: column}
}

func (r *LabelRepositoryImpl[T]) FindByLabel(label string) (*T, error) {
	var entity T
	result := r.db.
		Where(clause.Eq{Column: clause.Column{Name: r.column}, Value: label}).
		Limit(1).
		Find(&entity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &entity, nil
}

func (r *LabelRepositoryImpl[T]) WithTx(tx *gorm.DB) LabelRepository[T] {
	return &LabelRepositoryImpl[T]{db: tx, column: r.column}
}
