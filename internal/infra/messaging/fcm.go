// Package messaging implements the push-delivery primitive over Firebase
// Cloud Messaging.
package messaging

import (
	"context"
	"fmt"

	"notifier/internal/domain/entity"
	"notifier/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender creates a push sender backed by Firebase Cloud Messaging
func NewFCMSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{
		client: client,
	}, nil
}

// SendToToken sends a push notification to a single device token. The payload
// carries both the generic and the webpush notification shape so browser
// clients get something renderable.
func (s *fcmSender) SendToToken(ctx context.Context, token string, notification entity.Notification) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: notification.Title,
				Body:  notification.Body,
			},
		},
	}

	response, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || errorutils.IsInvalidArgument(err) {
			return "", errors.Wrap(service.ErrUnregisteredToken, err.Error())
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return response, nil
}
