package usecase

import (
	"context"
	"time"

	"resort-admin/internal/dto/response"

	"go.uber.org/zap"
)

// Pinger is the part of the database pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService interface {
	Check(ctx context.Context) *response.HealthResponse
}

type healthService struct {
	db      Pinger
	service string
	log     *zap.Logger
}

func NewHealthService(db Pinger, serviceName string, log *zap.Logger) HealthService {
	return &healthService{
		db:      db,
		service: serviceName,
		log:     log.With(zap.String("service", "health")),
	}
}

// Check reports "ok" when the database answers a ping within two seconds.
func (s *healthService) Check(ctx context.Context) *response.HealthResponse {
	resp := &response.HealthResponse{
		Status:    "ok",
		Service:   s.service,
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.Ping(pingCtx); err != nil {
		s.log.Warn("Database ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}

	return resp
}
