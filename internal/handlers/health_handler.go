package handlers

import (
	"errors"
	"mscategory/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type HealthChecker interface {
	Status() services.HealthStatus
	ForceCheck() (services.HealthStatus, error)
}

type HealthHandler struct {
	monitor HealthChecker
}

func NewHealthHandler(monitor *services.HealthMonitor) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

func (h *HealthHandler) GetStatus(c *fiber.Ctx) error {
	status := h.monitor.Status()
	return c.Status(statusCode(status)).JSON(status)
}

func (h *HealthHandler) ForceCheck(c *fiber.Ctx) error {
	status, err := h.monitor.ForceCheck()
	if errors.Is(err, services.ErrCheckInProgress) {
		return writeError(c, http.StatusConflict, err.Error())
	}
	if err != nil {
		return writeError(c, http.StatusInternalServerError, services.MsgInternalError)
	}
	return c.Status(statusCode(status)).JSON(status)
}

func statusCode(status services.HealthStatus) int {
	if status.Status == services.StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
