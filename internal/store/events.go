package store

import (
	"context"
	"log/slog"
)

// Severity distinguishes success notifications from rejections on the
// shared channel.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Event is a user-visible, non-blocking notification fired after every
// mutation attempt.
type Event struct {
	Op       string
	Message  string
	Severity Severity
}

// NotifyFunc receives mutation events. Implementations must not call
// back into the store.
type NotifyFunc func(Event)

func (s *Store) emit(ctx context.Context, op, message string) {
	slog.InfoContext(ctx, message, "operation", op)
	if s.notify != nil {
		s.notify(Event{Op: op, Message: message, Severity: SeverityInfo})
	}
}

// fail reports a rejected operation on the notification channel and
// returns the error unchanged for the caller.
func (s *Store) fail(ctx context.Context, op string, err error) error {
	slog.WarnContext(ctx, "Operation rejected", "operation", op, "error", err)
	if s.notify != nil {
		s.notify(Event{Op: op, Message: err.Error(), Severity: SeverityError})
	}
	return err
}
