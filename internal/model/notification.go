package model

// Severity classifies a notification for the presentation layer
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a human-readable message produced by a game command
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Info creates an informational notification
func Info(message string) Notification {
	return Notification{Severity: SeverityInfo, Message: message}
}

// Success creates a success notification
func Success(message string) Notification {
	return Notification{Severity: SeveritySuccess, Message: message}
}

// Failure creates an error notification
func Failure(message string) Notification {
	return Notification{Severity: SeverityError, Message: message}
}
