package expiry

import (
	"context"
	"log/slog"

	"lounge-scheduler/internal/domain/notification"
)

// LogSink writes notices to the application log. Used when no broker is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(_ context.Context, n *notification.Notification) error {
	s.logger.Info("notification",
		"notification_id", n.ID(),
		"type", n.Type(),
		"severity", n.Severity(),
		"subscription_id", n.SubjectID(),
		"owner", n.OwnerID(),
		"message", n.Message())
	return nil
}
