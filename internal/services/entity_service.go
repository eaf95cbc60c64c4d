package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"mscategory/internal/dto"
	"mscategory/internal/models"
	"mscategory/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EntityService is the CRUD contract consumed by the HTTP handlers.
//
// FindByID and Update report a missing record with found == false and a nil
// error; only classified failures (*ValidationError, *ConflictError,
// *StorageError) are returned as errors.
type EntityService[T any] interface {
	FindAll() ([]T, error)
	FindPage(page, size int) (*dto.Page[T], error)
	FindByID(id uint) (entity *T, found bool, err error)
	Save(entity *T) (*T, error)
	Update(id uint, entity *T) (updated *T, found bool, err error)
	Delete(id uint) (bool, error)
}

// EntityPointer constrains PT to *T carrying the Entity capability.
type EntityPointer[T any] interface {
	*T
	models.Entity
}

type entityServiceImpl[T any, PT EntityPointer[T]] struct {
	repo   repository.GenericRepository[T]
	labels repository.LabelRepository[T]
	log    *logrus.Entry
}

// NewEntityService builds the service for one entity kind. labels may be nil;
// the uniqueness check only runs when it is set and *T is a LabeledEntity.
func NewEntityService[T any, PT EntityPointer[T]](
	repo repository.GenericRepository[T],
	labels repository.LabelRepository[T],
	logService LogService,
) EntityService[T] {
	var zero T
	return &entityServiceImpl[T, PT]{
		repo:   repo,
		labels: labels,
		log:    logService.Log.WithField("entity", fmt.Sprintf("%T", zero)),
	}
}

func (s *entityServiceImpl[T, PT]) FindAll() ([]T, error) {
	entities, err := s.repo.FindAll()
	if err != nil {
		return nil, s.fail("findAll", NewStorageError("findAll", err))
	}
	s.log.WithFields(logrus.Fields{"op": "findAll", "count": len(entities)}).Debug("listed entities")
	return entities, nil
}

func (s *entityServiceImpl[T, PT]) FindPage(page, size int) (*dto.Page[T], error) {
	if page < 0 || size < 1 {
		return nil, NewValidationError("page must be >= 0 and size must be >= 1")
	}
	if page > math.MaxInt/size {
		return nil, NewValidationError("page is out of range")
	}
	entities, total, err := s.repo.FindPage(page*size, size)
	if err != nil {
		return nil, s.fail("findPage", NewStorageError("findPage", err))
	}
	return dto.NewPage(entities, page, size, total), nil
}

func (s *entityServiceImpl[T, PT]) FindByID(id uint) (*T, bool, error) {
	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, false, s.fail("findById", NewStorageError("findById", err))
	}
	if entity == nil {
		return nil, false, nil
	}
	return entity, true, nil
}

// Save creates a new record. Identifiers are assigned by storage, so any ID
// on the candidate is discarded.
func (s *entityServiceImpl[T, PT]) Save(entity *T) (*T, error) {
	if entity == nil {
		return nil, NewValidationError("La entidad no puede ser nula")
	}
	if err := validateLabel(PT(entity)); err != nil {
		return nil, s.fail("save", err)
	}
	PT(entity).SetID(0)
	PT(entity).SetCreatedAt(time.Time{})
	if err := s.checkLabel(s.labels, PT(entity), 0, MsgCategoryExists); err != nil {
		return nil, s.fail("save", err)
	}
	if err := s.repo.Save(entity); err != nil {
		return nil, s.fail("save", classify("save", err, MsgCategoryExists))
	}
	s.log.WithFields(logrus.Fields{"op": "save", "id": PT(entity).GetID()}).Info("entity created")
	return entity, nil
}

// Update replaces the record identified by id. The lookup, the label check
// and the write share one transaction.
func (s *entityServiceImpl[T, PT]) Update(id uint, entity *T) (*T, bool, error) {
	if entity == nil {
		return nil, false, NewValidationError("La entidad no puede ser nula")
	}
	if err := validateLabel(PT(entity)); err != nil {
		return nil, false, s.fail("update", err)
	}
	found := false
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return NewStorageError("findById", err)
		}
		if existing == nil {
			return nil
		}
		found = true

		var labels repository.LabelRepository[T]
		if s.labels != nil {
			labels = s.labels.WithTx(tx)
		}
		if err = s.checkLabel(labels, PT(entity), PT(existing).GetID(), MsgCategoryExistsUpdate); err != nil {
			return err
		}

		PT(entity).SetID(PT(existing).GetID())
		PT(entity).SetCreatedAt(PT(existing).GetCreatedAt())
		if err = repo.Save(entity); err != nil {
			return classify("update", err, MsgCategoryExistsUpdate)
		}
		return nil
	})
	if err != nil {
		return nil, false, s.fail("update", classify("update", err, MsgCategoryExistsUpdate))
	}
	if !found {
		s.log.WithFields(logrus.Fields{"op": "update", "id": id}).Debug("entity not found")
		return nil, false, nil
	}
	s.log.WithFields(logrus.Fields{"op": "update", "id": id}).Info("entity updated")
	return entity, true, nil
}

func (s *entityServiceImpl[T, PT]) Delete(id uint) (bool, error) {
	deleted := false
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return NewStorageError("findById", err)
		}
		if existing == nil {
			return nil
		}
		if err = repo.Delete(existing); err != nil {
			return NewStorageError("delete", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		if !IsStorageError(err) {
			err = NewStorageError("delete", err)
		}
		return false, s.fail("delete", err)
	}
	if deleted {
		s.log.WithFields(logrus.Fields{"op": "delete", "id": id}).Info("entity deleted")
	}
	return deleted, nil
}

func validateLabel(entity models.Entity) error {
	labeled, ok := entity.(models.LabeledEntity)
	if !ok {
		return nil
	}
	if strings.TrimSpace(labeled.Label()) == "" {
		return NewValidationError(MsgBlankLabel)
	}
	return nil
}

// checkLabel fails with a ConflictError when another record already carries
// the entity's label. A record whose ID equals ownerID is the entity itself.
func (s *entityServiceImpl[T, PT]) checkLabel(labels repository.LabelRepository[T], entity PT, ownerID uint, msg string) error {
	if labels == nil {
		return nil
	}
	labeled, ok := any(entity).(models.LabeledEntity)
	if !ok {
		return nil
	}
	existing, err := labels.FindByLabel(labeled.Label())
	if err != nil {
		return NewStorageError("findByLabel", err)
	}
	if existing != nil && PT(existing).GetID() != ownerID {
		return NewConflictError(msg)
	}
	return nil
}

func (s *entityServiceImpl[T, PT]) fail(op string, err error) error {
	fields := logrus.Fields{"op": op, "error": err.Error()}
	if IsConflictError(err) || IsValidationError(err) {
		s.log.WithFields(fields).Warn("entity operation rejected")
	} else {
		s.log.WithFields(fields).Error("entity operation failed")
	}
	return err
}

// classify leaves already classified errors untouched, turns duplicate keys
// reported by storage into conflicts and wraps everything else.
func classify(op string, err error, conflictMsg string) error {
	if IsConflictError(err) || IsStorageError(err) || IsValidationError(err) {
		return err
	}
	if errors.Is(err, repository.ErrDuplicateKey) {
		return &ConflictError{Msg: conflictMsg, Err: err}
	}
	return NewStorageError(op, err)
}
