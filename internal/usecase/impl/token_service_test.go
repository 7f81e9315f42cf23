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

func createTestTokenService(t *testing.T) (
	usecase.TokenUsecase,
	*mockRepo.MockTokenRepository,
	*mockSvc.MockPushPlatform,
) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	platform := mockSvc.NewMockPushPlatform(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewTokenService(logger, tokenRepo, platform)

	return svc, tokenRepo, platform
}

func TestTokenService_RegisterCurrentDevice_Success(t *testing.T) {
	svc, tokenRepo, platform := createTestTokenService(t)

	ctx := context.Background()

	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().CurrentToken(ctx).Return("device-token", nil)
	tokenRepo.EXPECT().
		SaveToken(ctx, "user-1", mock.MatchedBy(func(record *entity.DeviceToken) bool {
			return record.Token == "device-token" && !record.CreatedAt.IsZero()
		})).
		Return(nil)

	token, err := svc.RegisterCurrentDevice(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "device-token", token)
}

func TestTokenService_RegisterCurrentDevice_PermissionDenied(t *testing.T) {
	svc, _, platform := createTestTokenService(t)

	ctx := context.Background()

	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionDenied, nil)

	token, err := svc.RegisterCurrentDevice(ctx, "user-1")

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Empty(t, token)
}

func TestTokenService_RegisterCurrentDevice_NoToken(t *testing.T) {
	svc, _, platform := createTestTokenService(t)

	ctx := context.Background()

	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().CurrentToken(ctx).Return("", nil)

	token, err := svc.RegisterCurrentDevice(ctx, "user-1")

	assert.ErrorIs(t, err, domainerrors.ErrTokenUnavailable)
	assert.Empty(t, token)
}

func TestTokenService_RegisterCurrentDevice_PlatformError(t *testing.T) {
	svc, _, platform := createTestTokenService(t)

	ctx := context.Background()

	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().CurrentToken(ctx).Return("", errors.New("messaging runtime unavailable"))

	token, err := svc.RegisterCurrentDevice(ctx, "user-1")

	assert.Error(t, err)
	assert.Empty(t, token)
	assert.Contains(t, err.Error(), "failed to obtain delivery token")
}

func TestTokenService_RegisterCurrentDevice_NilPlatform(t *testing.T) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewTokenService(logger, tokenRepo, nil)

	token, err := svc.RegisterCurrentDevice(context.Background(), "user-1")

	assert.ErrorIs(t, err, domainerrors.ErrPlatformUnavailable)
	assert.Empty(t, token)
}

func TestTokenService_RegisterToken_Success(t *testing.T) {
	svc, tokenRepo, _ := createTestTokenService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().SaveToken(ctx, "user-1", mock.Anything).Return(nil)

	record, err := svc.RegisterToken(ctx, "user-1", "explicit-token")

	require.NoError(t, err)
	assert.Equal(t, "explicit-token", record.Token)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestTokenService_RegisterToken_SaveError(t *testing.T) {
	svc, tokenRepo, _ := createTestTokenService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().SaveToken(ctx, "user-1", mock.Anything).Return(errors.New("store unavailable"))

	record, err := svc.RegisterToken(ctx, "user-1", "explicit-token")

	assert.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to save token")
}

func TestTokenService_DeleteCurrentDeviceToken_Success(t *testing.T) {
	svc, tokenRepo, platform := createTestTokenService(t)

	ctx := context.Background()

	platform.EXPECT().CurrentToken(ctx).Return("device-token", nil)
	tokenRepo.EXPECT().DeleteToken(ctx, "user-1", "device-token").Return(nil)

	err := svc.DeleteCurrentDeviceToken(ctx, "user-1")

	require.NoError(t, err)
}

func TestTokenService_DeleteCurrentDeviceToken_NoToken(t *testing.T) {
	svc, _, platform := createTestTokenService(t)

	ctx := context.Background()

	// Nothing to remove when the platform has no current token.
	platform.EXPECT().CurrentToken(ctx).Return("", nil)

	err := svc.DeleteCurrentDeviceToken(ctx, "user-1")

	require.NoError(t, err)
}

func TestTokenService_DeleteToken_Error(t *testing.T) {
	svc, tokenRepo, _ := createTestTokenService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().DeleteToken(ctx, "user-1", "token-a").Return(errors.New("store unavailable"))

	err := svc.DeleteToken(ctx, "user-1", "token-a")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete token")
}

func TestTokenService_ListTokens(t *testing.T) {
	svc, tokenRepo, _ := createTestTokenService(t)

	ctx := context.Background()
	expected := []*entity.DeviceToken{{Token: "token-a"}, {Token: "token-b"}}

	tokenRepo.EXPECT().ListTokens(ctx, "user-1").Return(expected, nil)

	tokens, err := svc.ListTokens(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, expected, tokens)
}
