package service

import (
	"context"

	"notifier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUnregisteredToken wraps provider rejections that confirm a token is
// invalid or no longer registered. Callers may prune such tokens from the
// store.
var ErrUnregisteredToken = errors.New("token is invalid or unregistered")

// PushSender defines the interface for the push-delivery primitive.
type PushSender interface {
	// SendToToken delivers one notification to a single device token and
	// returns the provider's message ID. The payload is mirrored into both
	// the generic and the web-specific shape so web clients receive a
	// renderable notification. Provider rejections for invalid tokens wrap
	// ErrUnregisteredToken.
	SendToToken(ctx context.Context, token string, notification entity.Notification) (string, error)
}
