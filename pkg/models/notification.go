package models

// Notification type constants.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is an entry in the admin notification panel.
type Notification struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Time    string `json:"time" yaml:"time"`
	Read    bool   `json:"read" yaml:"read"`
	Type    string `json:"type" yaml:"type"`
}
