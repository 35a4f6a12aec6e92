package model

// NotificationField represents a titled section within a notification payload.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// NotificationAuthor identifies who the notification is posted as.
type NotificationAuthor struct {
	Name    string
	IconURL string
}

// Notification is a transport-agnostic message for downstream notifiers.
type Notification struct {
	Title       string
	Description string
	Color       int
	Author      NotificationAuthor
	Footer      string
	Fields      []NotificationField
}
