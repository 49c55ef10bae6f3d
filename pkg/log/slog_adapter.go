package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see client lifecycle events in
// the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Errors are logged at Warn level,
// everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("client", event.ClientAddr),
		slog.String("category", event.Category.String()),
	}

	level := slog.LevelDebug
	msg := "client event"

	switch {
	case event.StateChange != nil:
		msg = "client state change"
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Mlme != nil:
		msg = "mlme record"
		attrs = append(attrs, slog.String("record", event.Mlme.Record))
		if event.Mlme.Code != "" {
			attrs = append(attrs, slog.String("code", event.Mlme.Code))
		}
	case event.Timeout != nil:
		msg = "timeout"
		attrs = append(attrs,
			slog.String("kind", event.Timeout.Kind),
			slog.Bool("handled", event.Timeout.Handled),
		)
	case event.Error != nil:
		msg = "protocol error"
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
