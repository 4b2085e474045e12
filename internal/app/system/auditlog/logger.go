// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"

	"github.com/campuserp/recruitreq/internal/app/store/audit"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Lifecycle controls logging for requirement lifecycle decisions
	// (save, submit, rejection).
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Lifecycle string
}

// Logger provides convenience methods for logging audit events.
// It logs to both MongoDB (via audit.Store) and structured logs (via zap).
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("dept", event.DeptShortCode),
	}

	if event.SessionID != nil {
		fields = append(fields, zap.String("session_id", event.SessionID.Hex()))
	}
	if event.RequirementID != nil {
		fields = append(fields, zap.String("requirement_id", event.RequirementID.Hex()))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
// Logging destination is controlled by config: "all", "db", "log", or "off".
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	mode := l.config.Lifecycle
	if mode == "" {
		mode = "all"
	}
	if mode == "off" {
		return
	}

	if mode == "all" || mode == "log" {
		l.logToZap(event)
	}
	if (mode == "all" || mode == "db") && l.store != nil {
		if err := l.store.Insert(ctx, event); err != nil {
			// Audit persistence must never fail the request.
			l.zapLog.Error("audit event insert failed", zap.Error(err))
		}
	}
}
