package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrDuplicateKey = errors.New("duplicate key")

// GenericRepository is the storage contract shared by every entity kind.
// FindByID returns nil, nil when no row matches.
type GenericRepository[T any] interface {
	FindAll() ([]T, error)
	FindPage(offset, limit int) ([]T, int64, error)
	FindByID(id uint) (*T, error)
	Save(entity *T) error
	Delete(entity *T) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) GenericRepository[T]
}

// LabelRepository looks entities up by their unique label column.
// FindByLabel returns nil, nil when no row matches.
type LabelRepository[T any] interface {
	FindByLabel(label string) (*T, error)
	WithTx(tx *gorm.DB) LabelRepository[T]
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}
	return err
}
