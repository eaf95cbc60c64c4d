package handlers

import (
	"errors"
	"mscategory/internal/dto"
	"mscategory/internal/services"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const defaultPageSize = 20

// EntityHandler exposes an EntityService over HTTP. Every non-2xx response
// carries a dto.ErrorDetail body.
type EntityHandler[T any] struct {
	service  services.EntityService[T]
	validate *validator.Validate
}

func NewEntityHandler[T any](service services.EntityService[T]) *EntityHandler[T] {
	validate := validator.New()
	// notblank is a built-in non-standard validator, registration cannot fail
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	return &EntityHandler[T]{service: service, validate: validate}
}

func (h *EntityHandler[T]) FindAll(c *fiber.Ctx) error {
	entities, err := h.service.FindAll()
	if err != nil {
		return writeServiceError(c, err)
	}
	if len(entities) == 0 {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(entities)
}

func (h *EntityHandler[T]) FindPage(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid page")
	}
	size, err := strconv.Atoi(c.Query("size", strconv.Itoa(defaultPageSize)))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid size")
	}

	result, err := h.service.FindPage(page, size)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(result)
}

func (h *EntityHandler[T]) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, services.MsgInvalidID)
	}

	entity, found, err := h.service.FindByID(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !found {
		return writeServiceError(c, services.NewNotFoundError(id))
	}
	return c.JSON(entity)
}

func (h *EntityHandler[T]) Create(c *fiber.Ctx) error {
	entity, err := h.parseBody(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	saved, err := h.service.Save(entity)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(saved)
}

func (h *EntityHandler[T]) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, services.MsgInvalidID)
	}
	entity, err := h.parseBody(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err.Error())
	}

	updated, found, err := h.service.Update(id, entity)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !found {
		return writeServiceError(c, services.NewNotFoundError(id))
	}
	return c.JSON(updated)
}

func (h *EntityHandler[T]) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, http.StatusBadRequest, services.MsgInvalidID)
	}

	found, err := h.service.Delete(id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !found {
		return writeServiceError(c, services.NewNotFoundError(id))
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *EntityHandler[T]) parseBody(c *fiber.Ctx) (*T, error) {
	entity := new(T)
	if err := c.BodyParser(entity); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return writeError(c, http.StatusBadRequest, err.Error())
	case services.IsNotFoundError(err):
		return writeError(c, http.StatusNotFound, err.Error())
	case services.IsConflictError(err):
		return writeError(c, http.StatusConflict, err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, services.MsgInternalError)
	}
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.NewErrorDetail(status, utils.StatusMessage(status), message))
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, as an ErrorDetail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return writeError(c, fiberErr.Code, fiberErr.Message)
	}
	return writeError(c, http.StatusInternalServerError, services.MsgInternalError)
}
