package impl

import (
	"context"
	"log/slog"
	"time"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/pkg/errors"
)

type tokenService struct {
	logger    *slog.Logger
	tokenRepo repository.TokenRepository
	platform  service.PushPlatform
}

// NewTokenService creates a new token lifecycle service instance.
// The platform may be nil when the process has no client push subsystem;
// only the explicit-token operations work in that case.
func NewTokenService(
	logger *slog.Logger,
	tokenRepo repository.TokenRepository,
	platform service.PushPlatform,
) usecase.TokenUsecase {
	return &tokenService{
		logger:    logger,
		tokenRepo: tokenRepo,
		platform:  platform,
	}
}

// RegisterCurrentDevice asks the platform for consent, derives the current
// delivery token and upserts it for the user.
func (s *tokenService) RegisterCurrentDevice(ctx context.Context, userID string) (string, error) {
	if s.platform == nil {
		return "", domainerrors.ErrPlatformUnavailable
	}

	permission, err := s.platform.RequestPermission(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to request push permission")
	}
	if permission != service.PermissionGranted {
		return "", domainerrors.ErrPermissionDenied
	}

	token, err := s.platform.CurrentToken(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to obtain delivery token")
	}

	// The platform granted permission but minted no token. A warning, not a
	// hard failure: the caller may retry later.
	if token == "" {
		s.logger.Warn("Push platform yielded no delivery token",
			slog.String("user_id", userID),
		)

		return "", domainerrors.ErrTokenUnavailable
	}

	if _, err := s.RegisterToken(ctx, userID, token); err != nil {
		return "", err
	}

	return token, nil
}

// RegisterToken upserts a token record keyed by the token value itself, which
// makes re-registration idempotent.
func (s *tokenService) RegisterToken(ctx context.Context, userID string, token string) (*entity.DeviceToken, error) {
	record := &entity.DeviceToken{
		Token:     token,
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.SaveToken(ctx, userID, record); err != nil {
		return nil, errors.Wrap(err, "failed to save token")
	}

	return record, nil
}

// DeleteCurrentDeviceToken re-derives the device's token and removes it.
func (s *tokenService) DeleteCurrentDeviceToken(ctx context.Context, userID string) error {
	if s.platform == nil {
		return domainerrors.ErrPlatformUnavailable
	}

	token, err := s.platform.CurrentToken(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to derive current token")
	}

	if token == "" {
		return nil
	}

	return s.DeleteToken(ctx, userID, token)
}

// DeleteToken removes a token record; unknown tokens are a no-op.
func (s *tokenService) DeleteToken(ctx context.Context, userID string, token string) error {
	if err := s.tokenRepo.DeleteToken(ctx, userID, token); err != nil {
		return errors.Wrap(err, "failed to delete token")
	}

	return nil
}

// ListTokens retrieves all registered tokens for the user.
func (s *tokenService) ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	tokens, err := s.tokenRepo.ListTokens(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tokens")
	}

	return tokens, nil
}
