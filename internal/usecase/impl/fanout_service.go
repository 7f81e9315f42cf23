package impl

import (
	"context"
	"log/slog"

	"notifier/internal/domain/constants"
	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"
	"notifier/internal/domain/service"
	"notifier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type fanoutService struct {
	logger           *slog.Logger
	tokenRepo        repository.TokenRepository
	notificationRepo repository.NotificationRepository
	sender           service.PushSender
	publisher        service.EventPublisher
}

// NewFanoutService creates a new fan-out service instance
func NewFanoutService(
	logger *slog.Logger,
	tokenRepo repository.TokenRepository,
	notificationRepo repository.NotificationRepository,
	sender service.PushSender,
	publisher service.EventPublisher,
) usecase.FanoutUsecase {
	return &fanoutService{
		logger:           logger,
		tokenRepo:        tokenRepo,
		notificationRepo: notificationRepo,
		sender:           sender,
		publisher:        publisher,
	}
}

// Deliver fans one notification out to every registered token of the user.
// Each token gets exactly one delivery attempt and exactly one audit record,
// success or failure. One token's failure never aborts the rest of the batch.
func (s *fanoutService) Deliver(ctx context.Context, userID string, notification entity.Notification) (*entity.FanoutResult, error) {
	if notification.Category == "" {
		notification.Category = constants.DefaultCategory
	}

	tokens, err := s.tokenRepo.ListTokens(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tokens")
	}

	// Nothing registered means nothing to attempt and nothing to audit.
	if len(tokens) == 0 {
		return nil, domainerrors.ErrNoTokensFound
	}

	result := &entity.FanoutResult{
		Results: make([]entity.SendOutcome, 0, len(tokens)),
	}

	for _, token := range tokens {
		outcome := s.deliverToToken(ctx, userID, token.Token, notification)
		if outcome.Success {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
		result.Results = append(result.Results, outcome)
	}

	return result, nil
}

// deliverToToken performs one delivery attempt and writes its audit record.
func (s *fanoutService) deliverToToken(ctx context.Context, userID, token string, notification entity.Notification) entity.SendOutcome {
	outcome := entity.SendOutcome{Token: token}
	record := &entity.NotificationRecord{
		Read:     false,
		Category: notification.Category,
		Content: entity.NotificationContent{
			Title: notification.Title,
			Body:  notification.Body,
		},
	}

	response, sendErr := s.sender.SendToToken(ctx, token, notification)
	if sendErr != nil {
		outcome.Error = sendErr.Error()
		record.Content.Error = sendErr.Error()

		s.logger.Warn("Delivery attempt failed",
			slog.String("user_id", userID),
			slog.Any("error", sendErr),
		)

		// The provider confirmed the token is dead; drop it so future
		// fan-outs stop attempting it. Best effort only.
		if errors.Is(sendErr, service.ErrUnregisteredToken) {
			if delErr := s.tokenRepo.DeleteToken(ctx, userID, token); delErr != nil {
				s.logger.Warn("Failed to prune unregistered token",
					slog.String("user_id", userID),
					slog.Any("error", delErr),
				)
			}
		}
	} else {
		outcome.Success = true
		outcome.Response = response
		record.Content.Response = response
	}

	if _, writeErr := s.notificationRepo.CreateRecord(ctx, userID, record); writeErr != nil {
		// The audit write is part of the attempt: a lost record downgrades
		// the outcome to failure. Reported once, no retry; the remaining
		// tokens still get their attempts.
		s.logger.Error("Failed to persist notification record",
			slog.String("user_id", userID),
			slog.Any("error", writeErr),
		)
		outcome.Success = false
		outcome.Response = ""
		outcome.Error = errors.Wrap(writeErr, "failed to persist notification record").Error()
	}

	return outcome
}

// Enqueue publishes the fan-out request for the push worker.
func (s *fanoutService) Enqueue(ctx context.Context, userID string, notification entity.Notification) error {
	if notification.Category == "" {
		notification.Category = constants.DefaultCategory
	}

	event := &service.SendRequestEvent{
		RequestID: uuid.New().String(),
		UserID:    userID,
		Title:     notification.Title,
		Body:      notification.Body,
		Category:  notification.Category,
	}

	if err := s.publisher.PublishSendRequest(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish send request")
	}

	return nil
}
