package firestore

import (
	"context"
	"log/slog"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	fieldRead   = "estado"
	fieldSentAt = "fechaEnviado"
)

type notificationRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewNotificationRepository creates a Firestore-backed notification repository.
func NewNotificationRepository(client *firestore.Client, logger *slog.Logger) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

// CreateRecord appends a delivery-attempt record under
// users/{userID}/notifications with an engine-assigned ID. The sent timestamp
// comes from the server via the serverTimestamp tag on the entity.
func (r *notificationRepository) CreateRecord(ctx context.Context, userID string, record *entity.NotificationRecord) (string, error) {
	col, err := Path{usersCollection, userID, notificationsCollection}.Col(r.client)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve notifications path")
	}

	doc, _, err := col.Add(ctx, record)
	if err != nil {
		return "", domainerrors.NewStoreExecuteError(err, "failed to create notification record")
	}
	record.ID = doc.ID

	return doc.ID, nil
}

// MarkAsRead sets the read flag of one record to true. The update touches only
// the flag, so repeated calls converge on the same document state.
func (r *notificationRepository) MarkAsRead(ctx context.Context, userID string, recordID string) error {
	doc, err := Path{usersCollection, userID, notificationsCollection, recordID}.Doc(r.client)
	if err != nil {
		return errors.Wrap(err, "failed to resolve notification path")
	}

	_, err = doc.Update(ctx, []firestore.Update{
		{Path: fieldRead, Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrRecordNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to mark notification as read")
	}

	return nil
}

// ListRecords retrieves the user's records ordered by sent time descending.
func (r *notificationRepository) ListRecords(ctx context.Context, userID string, unreadOnly bool) ([]*entity.NotificationRecord, error) {
	col, err := Path{usersCollection, userID, notificationsCollection}.Col(r.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve notifications path")
	}

	query := col.Query
	if unreadOnly {
		query = query.Where(fieldRead, "==", false)
	}
	query = query.OrderBy(fieldSentAt, firestore.Desc)

	docs := query.Documents(ctx)
	defer docs.Stop()

	return decodeRecords(docs)
}

// CountUnread counts the unread records without loading their payloads.
func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	col, err := Path{usersCollection, userID, notificationsCollection}.Col(r.client)
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve notifications path")
	}

	docs := col.Where(fieldRead, "==", false).Select().Documents(ctx)
	defer docs.Stop()

	count := 0
	for {
		_, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to count unread notifications")
		}
		count++
	}

	return count, nil
}

// WatchUnreadCount emits the unread count for the initial snapshot and every
// subsequent change until the returned handle is invoked.
func (r *notificationRepository) WatchUnreadCount(ctx context.Context, userID string, fn func(count int)) (repository.Unsubscribe, error) {
	col, err := Path{usersCollection, userID, notificationsCollection}.Col(r.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve notifications path")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := col.Where(fieldRead, "==", false).Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()
		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("Unread-count watch terminated",
						slog.String("user_id", userID),
						slog.Any("error", err),
					)
				}

				return
			}
			fn(snapshot.Size)
		}
	}()

	return func() { cancel() }, nil
}

// WatchRecent emits the newest records, capped at limit and re-read in full on
// every change.
func (r *notificationRepository) WatchRecent(ctx context.Context, userID string, limit int, fn func(records []*entity.NotificationRecord)) (repository.Unsubscribe, error) {
	col, err := Path{usersCollection, userID, notificationsCollection}.Col(r.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve notifications path")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	snapshots := col.OrderBy(fieldSentAt, firestore.Desc).Limit(limit).Snapshots(watchCtx)

	go func() {
		defer snapshots.Stop()
		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					r.logger.Error("Recent-notifications watch terminated",
						slog.String("user_id", userID),
						slog.Any("error", err),
					)
				}

				return
			}

			records, err := decodeRecords(snapshot.Documents)
			if err != nil {
				r.logger.Error("Failed to decode notification snapshot",
					slog.String("user_id", userID),
					slog.Any("error", err),
				)

				continue
			}
			fn(records)
		}
	}()

	return func() { cancel() }, nil
}

func decodeRecords(docs *firestore.DocumentIterator) ([]*entity.NotificationRecord, error) {
	var records []*entity.NotificationRecord
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate notifications")
		}

		record := new(entity.NotificationRecord)
		if err := doc.DataTo(record); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification document")
		}
		record.ID = doc.Ref.ID
		records = append(records, record)
	}

	return records, nil
}
