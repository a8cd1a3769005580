package email

import (
	"context"

	"go.uber.org/zap"
)

// LogSender logs emails instead of sending them. It is used when no provider
// key is configured, so the contact flow can be exercised locally.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("email (not sent, no provider configured)",
		zap.String("from", msg.From),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("htmlBytes", len(msg.HTML)))
	return nil
}
