package models

// NotificationCategory selects success or error styling
type NotificationCategory string

const (
	NotificationSuccess NotificationCategory = "success"
	NotificationError   NotificationCategory = "error"
)

// Notification is a transient message shown to the admin
type Notification struct {
	Title    string               `json:"title"`
	Message  string               `json:"message"`
	Category NotificationCategory `json:"category"`
}
