// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"notifier/internal/domain/entity"
)

// Domain-specific errors for notification persistence.
var (
	// ErrRecordNotFound is returned when a notification record is not found.
	ErrRecordNotFound = errors.New("notification record not found")
)

// Unsubscribe releases a live listener. Callers must invoke it when they are
// done with a watch; leaking it leaks the underlying subscription.
type Unsubscribe func()

// NotificationRepository defines the interface for the per-user audit store of
// delivery attempts and its live read views.
type NotificationRepository interface {
	// CreateRecord persists a new delivery-attempt record under the user and
	// returns the assigned record ID. The sent timestamp is server-assigned.
	CreateRecord(ctx context.Context, userID string, record *entity.NotificationRecord) (string, error)

	// MarkAsRead flips the read flag of exactly one record to true.
	// Marking an already-read record again is a no-op. The reverse
	// transition does not exist.
	MarkAsRead(ctx context.Context, userID string, recordID string) error

	// ListRecords retrieves records for a user ordered by sent time
	// descending, optionally restricted to unread ones.
	ListRecords(ctx context.Context, userID string, unreadOnly bool) ([]*entity.NotificationRecord, error)

	// CountUnread returns the current number of unread records.
	CountUnread(ctx context.Context, userID string) (int, error)

	// WatchUnreadCount emits the unread count on the initial snapshot and on
	// every subsequent change until unsubscribed.
	WatchUnreadCount(ctx context.Context, userID string, fn func(count int)) (Unsubscribe, error)

	// WatchRecent emits the most recent records (sent time descending,
	// capped at limit), re-emitted in full on every change.
	WatchRecent(ctx context.Context, userID string, limit int, fn func(records []*entity.NotificationRecord)) (Unsubscribe, error)
}
