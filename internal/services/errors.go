package services

import (
	"errors"
	"fmt"
)

const (
	MsgCategoryExists        = "La categoria ya existe"
	MsgCategoryExistsUpdate  = "La categoría ya existe"
	MsgInvalidID             = "El id ingresado no es valido"
	MsgBlankLabel            = "La categoria no puede estar vacia"
	MsgInternalError         = "Ocurrió un error interno en el servidor"
	msgCategoryNotFoundForID = "No se encontro la categoria con el id: %d"
)

// ValidationError reports malformed input. It is never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// ConflictError reports a label uniqueness violation on create or rename.
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

// NotFoundError is raised at the handler boundary from an absent result.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(msgCategoryNotFoundForID, e.ID)
}

func NewNotFoundError(id uint) error {
	return &NotFoundError{ID: id}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// StorageError wraps any unclassified repository failure, keeping its message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsStorageError(err error) bool {
	var storageError *StorageError
	return errors.As(err, &storageError)
}
