package models

// Notification kinds.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

// Notification is a transient user-facing message.
type Notification struct {
	ID      string `json:"id"`
	Kind    string `json:"type"`
	Message string `json:"message"`
}
