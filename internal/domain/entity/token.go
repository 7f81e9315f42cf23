// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DeviceToken represents one push-delivery credential registered by a client.
// The token value doubles as the storage key, so re-registering the same
// device overwrites the existing record instead of duplicating it.
type DeviceToken struct {
	Token     string    `json:"token" firestore:"token"`         // Opaque FCM registration token addressing one (user, device, subscription) triple.
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"` // Timestamp of when the token was registered.
}
