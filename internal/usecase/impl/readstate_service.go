package impl

import (
	"context"
	"log/slog"

	"notifier/internal/domain/constants"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
)

type readStateService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
}

// NewReadStateService creates a new read-state service instance
func NewReadStateService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
) usecase.ReadStateUsecase {
	return &readStateService{
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

// MarkAsRead flips exactly one record to read. Re-marking a read record
// changes nothing; the flag never flips back.
func (s *readStateService) MarkAsRead(ctx context.Context, userID string, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// ListNotifications returns the user's records, newest first.
func (s *readStateService) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*entity.NotificationRecord, error) {
	records, err := s.notificationRepo.ListRecords(ctx, userID, unreadOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return records, nil
}

// UnreadCount returns the point-in-time unread count.
func (s *readStateService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// WatchUnreadCount subscribes to the live unread count.
func (s *readStateService) WatchUnreadCount(ctx context.Context, userID string, fn func(count int)) (repository.Unsubscribe, error) {
	unsubscribe, err := s.notificationRepo.WatchUnreadCount(ctx, userID, fn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch unread count")
	}

	s.logger.Debug("Unread-count watch started", slog.String("user_id", userID))

	return unsubscribe, nil
}

// WatchRecent subscribes to the live list of the most recent notifications.
func (s *readStateService) WatchRecent(ctx context.Context, userID string, fn func(records []*entity.NotificationRecord)) (repository.Unsubscribe, error) {
	unsubscribe, err := s.notificationRepo.WatchRecent(ctx, userID, constants.RecentNotificationLimit, fn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch recent notifications")
	}

	s.logger.Debug("Recent-notifications watch started", slog.String("user_id", userID))

	return unsubscribe, nil
}
