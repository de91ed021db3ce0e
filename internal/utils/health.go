package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthChecker struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Timeout time.Duration
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	status := HealthStatus{Status: StatusHealthy}

	if h.DB != nil {
		service := h.probe(ctx, timeout, "Database:"+h.DB.Dialector.Name(), func(ctx context.Context) error {
			sqlDB, err := h.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		})
		status.add(service)
	}

	if h.Redis != nil {
		service := h.probe(ctx, timeout, "Redis", func(ctx context.Context) error {
			return h.Redis.Ping(ctx).Err()
		})
		status.add(service)
	}

	status.Timestamp = time.Now().UTC()
	return status
}

func (h *HealthChecker) probe(ctx context.Context, timeout time.Duration, name string, ping func(context.Context) error) Service {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	service := Service{Name: name, Status: "up"}
	if err := ping(ctx); err != nil {
		service.Status = "down"
		service.Message = err.Error()
	}
	return service
}

func (s *HealthStatus) add(service Service) {
	if service.Status != "up" {
		s.Status = StatusDegraded
	}
	s.Services = append(s.Services, service)
}
