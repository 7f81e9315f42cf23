package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// FanoutUsecase defines the interface for notification fan-out.
type FanoutUsecase interface {
	// Deliver fans one notification out to every token registered for the
	// user, persisting one audit record per attempt, and returns the
	// per-token outcomes. Fails with domain ErrNoTokensFound when the user
	// has no registered tokens; in that case nothing is written.
	Deliver(ctx context.Context, userID string, notification entity.Notification) (*entity.FanoutResult, error)

	// Enqueue publishes a fan-out request for asynchronous processing by
	// the push worker.
	Enqueue(ctx context.Context, userID string, notification entity.Notification) error
}
