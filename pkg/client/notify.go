package client

import "github.com/rs/zerolog"

// Severity classifies a user-facing notice.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier surfaces login outcomes to the user. Fire-and-forget: the client
// never waits on it and never inspects a result.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string, severity Severity)

func (f NotifierFunc) Notify(message string, severity Severity) {
	f(message, severity)
}

// LogNotifier renders notices as log lines. The default for headless use.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Notify(message string, severity Severity) {
	if severity == SeverityError {
		n.Log.Error().Msg(message)
		return
	}
	n.Log.Info().Msg(message)
}
