package notify

import "log/slog"

// Notifier receives short progress and status messages from long
// operations. These are an observability aid for whatever surface hosts
// the pipeline, not part of any data contract.
type Notifier interface {
	Notify(title, detail string)
}

// Slog routes notifications to the process logger.
type Slog struct{}

func (Slog) Notify(title, detail string) {
	slog.Info(title, "detail", detail)
}

// Discard drops all notifications.
type Discard struct{}

func (Discard) Notify(title, detail string) {}
