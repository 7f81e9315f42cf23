package usecase

import (
	"context"

	"notifier/internal/domain/entity"
)

// TokenUsecase defines the interface for device-token lifecycle management.
type TokenUsecase interface {
	// RegisterCurrentDevice runs the full client-side registration flow:
	// request push permission, derive the current delivery token, and
	// upsert it for the user. Returns the registered token value.
	RegisterCurrentDevice(ctx context.Context, userID string) (string, error)

	// RegisterToken upserts an explicit token for the user, keyed by the
	// token value. Re-registering an already-known token is a no-op
	// overwrite, never a duplicate.
	RegisterToken(ctx context.Context, userID string, token string) (*entity.DeviceToken, error)

	// DeleteCurrentDeviceToken re-derives the current device token and
	// removes its record. A no-op when no token can be derived.
	DeleteCurrentDeviceToken(ctx context.Context, userID string) error

	// DeleteToken removes an explicit token record.
	DeleteToken(ctx context.Context, userID string, token string) error

	// ListTokens retrieves all registered tokens for the user.
	ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)
}
