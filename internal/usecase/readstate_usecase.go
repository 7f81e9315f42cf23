package usecase

import (
	"context"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/repository"
)

// ReadStateUsecase defines the interface for notification read-state views.
type ReadStateUsecase interface {
	// MarkAsRead flips one notification record to read. Idempotent.
	MarkAsRead(ctx context.Context, userID string, notificationID string) error

	// ListNotifications returns all records for the user, or only the
	// unread ones, ordered by sent time descending.
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*entity.NotificationRecord, error)

	// UnreadCount returns the point-in-time number of unread records.
	UnreadCount(ctx context.Context, userID string) (int, error)

	// WatchUnreadCount subscribes to the live unread count. The callback
	// fires on the initial snapshot and on every change until the returned
	// handle is invoked.
	WatchUnreadCount(ctx context.Context, userID string, fn func(count int)) (repository.Unsubscribe, error)

	// WatchRecent subscribes to the live list of the most recent
	// notifications, re-emitted in full on every change.
	WatchRecent(ctx context.Context, userID string, fn func(records []*entity.NotificationRecord)) (repository.Unsubscribe, error)
}
