// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"notifier/internal/domain/entity"
)

// TokenRepository defines the interface for device-token storage under a user.
type TokenRepository interface {
	// SaveToken upserts a device token keyed by its token value.
	// Re-registering the same token overwrites the existing record.
	SaveToken(ctx context.Context, userID string, token *entity.DeviceToken) error

	// ListTokens retrieves all registered tokens for a user.
	ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// DeleteToken removes a token record. Deleting a token that does not
	// exist is a no-op.
	DeleteToken(ctx context.Context, userID string, token string) error
}
