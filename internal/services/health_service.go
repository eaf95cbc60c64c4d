package services

import (
	"errors"
	"sync"
	"time"

	"mscategory/internal/config"
	"mscategory/internal/dto"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusUnknown   = "unknown"
)

var ErrCheckInProgress = errors.New("health check is in progress")

type Pinger interface {
	Ping() error
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

type HealthStatus struct {
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	CheckedAt  dto.Timestamp `json:"checked_at"`
	DurationMs int64         `json:"duration_ms"`
}

// HealthMonitor pings the database on a cron schedule and keeps the last
// result for the health endpoint.
type HealthMonitor struct {
	pinger        Pinger
	configuration *config.Configuration
	logService    LogService
	checking      bool
	last          HealthStatus
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewHealthMonitor(db *gorm.DB, logService LogService, configuration *config.Configuration) *HealthMonitor {
	return newHealthMonitor(gormPinger{db: db}, logService, configuration)
}

func newHealthMonitor(pinger Pinger, logService LogService, configuration *config.Configuration) *HealthMonitor {
	return &HealthMonitor{
		pinger:        pinger,
		configuration: configuration,
		logService:    logService,
		last:          HealthStatus{Status: StatusUnknown},
		cron:          cron.New(),
	}
}

func (h *HealthMonitor) Start() error {
	schedule := h.configuration.Server.HealthConfig.Schedule
	_, err := h.cron.AddFunc(schedule, func() {
		if _, err := h.ForceCheck(); err != nil {
			h.logService.Log.WithFields(logrus.Fields{
				"job":    "health",
				"status": "skipped",
			}).Debug(err.Error())
		}
	})
	if err != nil {
		h.logService.Log.WithFields(logrus.Fields{
			"job":   "health",
			"cron":  schedule,
			"error": err.Error(),
		}).Error("Failed to schedule health check")
		return err
	}
	h.cron.Start()
	h.logService.Log.WithFields(logrus.Fields{
		"job":  "health",
		"cron": schedule,
	}).Info("health check scheduled")
	return nil
}

func (h *HealthMonitor) Stop() {
	<-h.cron.Stop().Done()
}

// ForceCheck runs a check now unless one is already running.
func (h *HealthMonitor) ForceCheck() (HealthStatus, error) {
	h.mutex.Lock()
	if h.checking {
		h.mutex.Unlock()
		return HealthStatus{}, ErrCheckInProgress
	}
	h.checking = true
	h.mutex.Unlock()

	status := h.check()

	h.mutex.Lock()
	h.checking = false
	h.last = status
	h.mutex.Unlock()
	return status, nil
}

func (h *HealthMonitor) Status() HealthStatus {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.last
}

func (h *HealthMonitor) IsChecking() bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.checking
}

func (h *HealthMonitor) check() HealthStatus {
	start := time.Now()
	err := h.pinger.Ping()
	status := HealthStatus{
		Status:     StatusHealthy,
		CheckedAt:  dto.Timestamp(start),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		h.logService.Log.WithFields(logrus.Fields{
			"job":    "health",
			"status": StatusUnhealthy,
			"error":  err.Error(),
		}).Warn("database ping failed")
		return status
	}
	h.logService.Log.WithFields(logrus.Fields{
		"job":      "health",
		"status":   StatusHealthy,
		"duration": status.DurationMs,
	}).Debug("database ping succeeded")
	return status
}
