package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) FindPage(offset, limit int) ([]T, int64, error) {
	var total int64
	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entities []T
	err := r.db.
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Offset(offset).
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	result := r.db.Limit(1).Find(&entity, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &entity, nil
}

// Save inserts when the primary key is zero and updates otherwise.
func (r *GenericRepositoryImpl[T]) Save(entity *T) error {
	return translateError(r.db.Save(entity).Error)
}

func (r *GenericRepositoryImpl[T]) Delete(entity *T) error {
	return r.db.Delete(entity).Error
}

func (r *GenericRepositoryImpl[T]) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *GenericRepositoryImpl[T]) WithTx(tx *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: tx}
}
