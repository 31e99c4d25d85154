package usecase

import "context"

// HealthUsecase reports service readiness.
type HealthUsecase interface {
	Check(ctx context.Context) error
}
