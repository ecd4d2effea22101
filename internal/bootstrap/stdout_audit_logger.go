package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StdoutAuditLogger records lifecycle entries through the global zap
// logger; the dev deployment collects them straight from stdout.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Action,
		zap.String("message", entry.Message),
		zap.Time("at", time.Now().UTC()),
		zap.Any("meta", entry.Meta),
	)
}
