package model

import "time"

// Kind classifies a notification.
type Kind string

const (
	// KindInfo is the default kind.
	KindInfo Kind = "info"
	// KindSuccess marks a completed action.
	KindSuccess Kind = "success"
	// KindWarning marks an action that needs user attention.
	KindWarning Kind = "warning"
	// KindError marks a failed action.
	KindError Kind = "error"
)

// Normalize maps unknown kinds to KindInfo.
func (k Kind) Normalize() Kind {
	switch k {
	case KindSuccess, KindWarning, KindError:
		return k
	default:
		return KindInfo
	}
}

// Icon returns the marker shown in front of the message.
func (k Kind) Icon() string {
	switch k.Normalize() {
	case KindSuccess:
		return "✅"
	case KindError:
		return "❌"
	case KindWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// Notification is a transient message presented to the user.
type Notification struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
