package logger

import (
	"time"

	"go.uber.org/zap"
)

// LogComponent tags log lines with the subsystem that emitted them
type LogComponent string

const (
	ComponentAPI        LogComponent = "api"
	ComponentDB         LogComponent = "database"
	ComponentAuth       LogComponent = "auth"
	ComponentPayment    LogComponent = "payment"
	ComponentRefund     LogComponent = "refund"
	ComponentWaitlist   LogComponent = "waitlist"
	ComponentEmail      LogComponent = "email"
	ComponentWebhook    LogComponent = "webhook"
	ComponentMiddleware LogComponent = "middleware"
	ComponentServer     LogComponent = "server"
	ComponentWorker     LogComponent = "worker"
)

// ForComponent returns a child of base tagged with the component name.
// A nil base falls back to the global logger.
func ForComponent(base *zap.Logger, component LogComponent) *zap.Logger {
	if base == nil {
		base = Log
	}
	return base.With(zap.String("component", string(component)))
}

// Timer measures an operation and logs its duration when stopped
type Timer struct {
	start  time.Time
	logger *zap.Logger
	name   string
}

// NewTimer starts a timer for the named operation
func NewTimer(l *zap.Logger, operation string) *Timer {
	return &Timer{start: time.Now(), logger: l, name: operation}
}

// StopWithResult logs the elapsed time at info on success and error otherwise
func (t *Timer) StopWithResult(err error) time.Duration {
	elapsed := time.Since(t.start)
	fields := []zap.Field{zap.String("operation", t.name), zap.Duration("duration", elapsed)}
	if err != nil {
		t.logger.Error("operation failed", append(fields, zap.Error(err))...)
		return elapsed
	}
	t.logger.Info("operation completed", fields...)
	return elapsed
}

// LogRefundEvent records a refund decision in a consistent shape
func LogRefundEvent(l *zap.Logger, source, subjectID string, amountCents int64, percentage string, fallback bool) {
	l.Info("refund resolved",
		zap.String("refund_source", source),
		zap.String("subject_id", subjectID),
		zap.Int64("refund_amount_cents", amountCents),
		zap.String("refund_percentage", percentage),
		zap.Bool("fallback_rule", fallback),
	)
}
