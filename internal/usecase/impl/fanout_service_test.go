package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/service"
	mockRepo "notifier/internal/mocks/repository"
	mockSvc "notifier/internal/mocks/service"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFanoutService(t *testing.T) (
	usecase.FanoutUsecase,
	*mockRepo.MockTokenRepository,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockPushSender,
	*mockSvc.MockEventPublisher,
) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewFanoutService(logger, tokenRepo, notificationRepo, sender, publisher)

	return svc, tokenRepo, notificationRepo, sender, publisher
}

func TestFanoutService_Deliver_Success(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()
	notification := entity.Notification{Title: "Hello", Body: "World", Category: "alerts"}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{
		{Token: "token-a"},
		{Token: "token-b"},
	}, nil)

	sender.EXPECT().SendToToken(ctx, "token-a", notification).Return("projects/p/messages/1", nil)
	sender.EXPECT().SendToToken(ctx, "token-b", notification).Return("projects/p/messages/2", nil)

	notificationRepo.EXPECT().
		CreateRecord(ctx, "user-1", mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return !record.Read && record.Category == "alerts" &&
				record.Content.Title == "Hello" && record.Content.Body == "World" &&
				record.Content.Error == ""
		})).
		Return("record-id", nil).
		Times(2)

	result, err := svc.Deliver(ctx, "user-1", notification)

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "token-a", result.Results[0].Token)
	assert.Equal(t, "projects/p/messages/1", result.Results[0].Response)
	assert.True(t, result.Results[0].Success)
}

func TestFanoutService_Deliver_NoTokens(t *testing.T) {
	svc, tokenRepo, _, _, _ := createTestFanoutService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{}, nil)

	result, err := svc.Deliver(ctx, "user-1", entity.Notification{Title: "t", Body: "b"})

	assert.ErrorIs(t, err, domainerrors.ErrNoTokensFound)
	assert.Nil(t, result)
}

func TestFanoutService_Deliver_ListTokensError(t *testing.T) {
	svc, tokenRepo, _, _, _ := createTestFanoutService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return(nil, errors.New("store unavailable"))

	result, err := svc.Deliver(ctx, "user-1", entity.Notification{Title: "t", Body: "b"})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list tokens")
}

func TestFanoutService_Deliver_DefaultCategory(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{{Token: "token-a"}}, nil)

	// An empty category becomes "general" before the send and the record.
	sender.EXPECT().
		SendToToken(ctx, "token-a", entity.Notification{Title: "t", Body: "b", Category: "general"}).
		Return("msg-1", nil)

	notificationRepo.EXPECT().
		CreateRecord(ctx, "user-1", mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return record.Category == "general"
		})).
		Return("record-id", nil)

	result, err := svc.Deliver(ctx, "user-1", entity.Notification{Title: "t", Body: "b"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
}

func TestFanoutService_Deliver_PartialFailure(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()
	notification := entity.Notification{Title: "t", Body: "b", Category: "general"}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{
		{Token: "good-token"},
		{Token: "bad-token"},
	}, nil)

	sender.EXPECT().SendToToken(ctx, "good-token", notification).Return("msg-1", nil)
	sender.EXPECT().SendToToken(ctx, "bad-token", notification).Return("", errors.New("fcm unavailable"))

	notificationRepo.EXPECT().CreateRecord(ctx, "user-1", mock.Anything).Return("record-id", nil).Times(2)

	result, err := svc.Deliver(ctx, "user-1", notification)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Contains(t, result.Results[1].Error, "fcm unavailable")
}

func TestFanoutService_Deliver_PrunesUnregisteredToken(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()
	notification := entity.Notification{Title: "t", Body: "b", Category: "general"}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{{Token: "stale-token"}}, nil)

	sender.EXPECT().
		SendToToken(ctx, "stale-token", notification).
		Return("", errors.Wrap(service.ErrUnregisteredToken, "registration-token-not-registered"))

	tokenRepo.EXPECT().DeleteToken(ctx, "user-1", "stale-token").Return(nil)

	// The failed attempt still gets its audit record.
	notificationRepo.EXPECT().
		CreateRecord(ctx, "user-1", mock.MatchedBy(func(record *entity.NotificationRecord) bool {
			return record.Content.Error != ""
		})).
		Return("record-id", nil)

	result, err := svc.Deliver(ctx, "user-1", notification)

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
}

func TestFanoutService_Deliver_PruneFailureDoesNotAbort(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()
	notification := entity.Notification{Title: "t", Body: "b", Category: "general"}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{
		{Token: "stale-token"},
		{Token: "good-token"},
	}, nil)

	sender.EXPECT().
		SendToToken(ctx, "stale-token", notification).
		Return("", errors.Wrap(service.ErrUnregisteredToken, "unregistered"))
	sender.EXPECT().SendToToken(ctx, "good-token", notification).Return("msg-2", nil)

	tokenRepo.EXPECT().DeleteToken(ctx, "user-1", "stale-token").Return(errors.New("delete failed"))

	notificationRepo.EXPECT().CreateRecord(ctx, "user-1", mock.Anything).Return("record-id", nil).Times(2)

	result, err := svc.Deliver(ctx, "user-1", notification)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
}

func TestFanoutService_Deliver_RecordWriteFailureDowngradesOutcome(t *testing.T) {
	svc, tokenRepo, notificationRepo, sender, _ := createTestFanoutService(t)

	ctx := context.Background()
	notification := entity.Notification{Title: "t", Body: "b", Category: "general"}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return([]*entity.DeviceToken{{Token: "token-a"}}, nil)

	sender.EXPECT().SendToToken(ctx, "token-a", notification).Return("msg-1", nil)

	notificationRepo.EXPECT().
		CreateRecord(ctx, "user-1", mock.Anything).
		Return("", errors.New("write quota exceeded"))

	result, err := svc.Deliver(ctx, "user-1", notification)

	require.NoError(t, err)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.False(t, result.Results[0].Success)
	assert.Contains(t, result.Results[0].Error, "failed to persist notification record")
}

func TestFanoutService_Enqueue_Success(t *testing.T) {
	svc, _, _, _, publisher := createTestFanoutService(t)

	ctx := context.Background()

	publisher.EXPECT().
		PublishSendRequest(ctx, mock.MatchedBy(func(event *service.SendRequestEvent) bool {
			return event.UserID == "user-1" && event.Title == "t" &&
				event.Body == "b" && event.Category == "general" && event.RequestID != ""
		})).
		Return(nil)

	err := svc.Enqueue(ctx, "user-1", entity.Notification{Title: "t", Body: "b"})

	require.NoError(t, err)
}

func TestFanoutService_Enqueue_PublishError(t *testing.T) {
	svc, _, _, _, publisher := createTestFanoutService(t)

	ctx := context.Background()

	publisher.EXPECT().PublishSendRequest(ctx, mock.Anything).Return(errors.New("broker down"))

	err := svc.Enqueue(ctx, "user-1", entity.Notification{Title: "t", Body: "b"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish send request")
}
