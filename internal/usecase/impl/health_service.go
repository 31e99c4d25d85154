package impl

import (
	"context"

	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/usecase"
)

type healthService struct {
	checker repository.HealthChecker
}

// NewHealthService creates a readiness checker backed by the store ping
func NewHealthService(checker repository.HealthChecker) usecase.HealthUsecase {
	return &healthService{checker: checker}
}

func (s *healthService) Check(ctx context.Context) error {
	return errors.Wrap(s.checker.Ping(ctx), "store ping failed")
}
