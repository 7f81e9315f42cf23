package service

import (
	"context"
)

// PermissionResult is the outcome of a push-permission request.
type PermissionResult uint8

const (
	// PermissionGranted means the platform allowed push notifications.
	PermissionGranted PermissionResult = iota
	// PermissionDenied means the user or platform refused push notifications.
	PermissionDenied
)

// PushPlatform abstracts the client push subsystem that owns permission
// prompts and token issuance (the browser messaging runtime in production).
// Cancellation happens by the caller abandoning the context; there is no
// separate cancel operation.
type PushPlatform interface {
	// RequestPermission asks the platform for push-notification consent.
	RequestPermission(ctx context.Context) (PermissionResult, error)

	// CurrentToken derives the delivery token for the current device
	// subscription. An empty token with a nil error means the platform
	// could not mint one right now; callers may retry later.
	CurrentToken(ctx context.Context) (string, error)
}
