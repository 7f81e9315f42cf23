// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Notification is one logical push message addressed to a user. Fan-out
// expands it into one delivery attempt per registered token.
type Notification struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"` // Free-text classification, defaults to "general".
}

// NotificationContent is the persisted payload of a delivery attempt.
// Response and Error are mutually exclusive: a successful attempt carries the
// provider message ID, a failed one carries the error message.
type NotificationContent struct {
	Title    string `json:"title" firestore:"title"`
	Body     string `json:"body" firestore:"body"`
	Response string `json:"response,omitempty" firestore:"response,omitempty"`
	Error    string `json:"error,omitempty" firestore:"error,omitempty"`
}

// NotificationRecord is the audit record of a single delivery attempt,
// stored under users/{userId}/notifications. Field names follow the persisted
// layout: estado is the read flag (false = unread), fechaEnviado is assigned
// by the server. Records are immutable except for the read flag, which only
// ever flips false to true.
type NotificationRecord struct {
	ID       string              `json:"id" firestore:"-"` // Document ID, assigned by the store.
	Read     bool                `json:"read" firestore:"estado"`
	Content  NotificationContent `json:"content" firestore:"contenido"`
	Category string              `json:"category" firestore:"categoria"`
	SentAt   time.Time           `json:"sent_at" firestore:"fechaEnviado,serverTimestamp"`
}

// SendOutcome reports the result of one delivery attempt within a fan-out.
type SendOutcome struct {
	Token    string `json:"token"`
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// FanoutResult aggregates the per-token outcomes of one fan-out call.
// SuccessCount+FailureCount always equals the number of registered tokens,
// and every token appears in Results exactly once. The result is transient;
// only the per-attempt NotificationRecords are persisted.
type FanoutResult struct {
	Results      []SendOutcome `json:"results"`
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
}
