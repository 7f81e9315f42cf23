package firestore

import (
	"context"

	"notifier/internal/domain/entity"
	domainerrors "notifier/internal/domain/errors"
	"notifier/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

const (
	usersCollection         = "users"
	tokensCollection        = "tokens"
	notificationsCollection = "notifications"
)

type tokenRepository struct {
	client *firestore.Client
}

// NewTokenRepository creates a Firestore-backed token repository.
func NewTokenRepository(client *firestore.Client) repository.TokenRepository {
	return &tokenRepository{client: client}
}

// SaveToken upserts the token document at users/{userID}/tokens/{token}.
// Using the token value as the document ID makes re-registration overwrite
// in place instead of accumulating duplicates.
func (r *tokenRepository) SaveToken(ctx context.Context, userID string, token *entity.DeviceToken) error {
	doc, err := Path{usersCollection, userID, tokensCollection, token.Token}.Doc(r.client)
	if err != nil {
		return errors.Wrap(err, "failed to resolve token path")
	}

	if _, err := doc.Set(ctx, token); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save token")
	}

	return nil
}

// ListTokens retrieves every token document under the user.
func (r *tokenRepository) ListTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	col, err := Path{usersCollection, userID, tokensCollection}.Col(r.client)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tokens path")
	}

	var tokens []*entity.DeviceToken
	docs := col.Documents(ctx)
	defer docs.Stop()
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate tokens")
		}

		token := new(entity.DeviceToken)
		if err := doc.DataTo(token); err != nil {
			return nil, errors.Wrap(err, "failed to decode token document")
		}
		if token.Token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// DeleteToken removes the token document. Firestore deletes are idempotent,
// so deleting an unknown token succeeds silently.
func (r *tokenRepository) DeleteToken(ctx context.Context, userID string, token string) error {
	doc, err := Path{usersCollection, userID, tokensCollection, token}.Doc(r.client)
	if err != nil {
		return errors.Wrap(err, "failed to resolve token path")
	}

	if _, err := doc.Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete token")
	}

	return nil
}
