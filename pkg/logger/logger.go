package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is an immutable set of fields bound to a shared logrus instance.
// Every With* call returns a copy.
type Logger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	ActorKey     contextKey = "actor"
)

type Config struct {
	Level      LogLevel `json:"level"`
	Format     string   `json:"format"` // json, text
	Output     string   `json:"output"` // stdout, stderr, file path
	TimeFormat string   `json:"time_format"`
	Caller     bool     `json:"caller"`
	Colors     bool     `json:"colors"`
	AppName    string   `json:"app_name"`
	Version    string   `json:"version"`
}

func NewLogger(config *Config) (*Logger, error) {
	base := logrus.New()
	base.SetLevel(parseLevel(config.Level))
	base.SetReportCaller(config.Caller)
	base.SetFormatter(newFormatter(config))

	out, err := openOutput(config.Output)
	if err != nil {
		return nil, err
	}
	base.SetOutput(out)

	return &Logger{logger: base, fields: logrus.Fields{}}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	return &Logger{logger: base, fields: logrus.Fields{}}
}

func parseLevel(level LogLevel) logrus.Level {
	parsed, err := logrus.ParseLevel(string(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func newFormatter(config *Config) logrus.Formatter {
	if config.Format == "json" {
		return &JSONFormatter{
			TimestampFormat: config.TimeFormat,
			AppName:         config.AppName,
			Version:         config.Version,
		}
	}
	return &TextFormatter{
		TimestampFormat: config.TimeFormat,
		Colors:          config.Colors,
		AppName:         config.AppName,
	}
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
	}
	return file, nil
}

func (l *Logger) with(extra logrus.Fields) *Logger {
	merged := make(logrus.Fields, len(l.fields)+len(extra))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return &Logger{logger: l.logger, fields: merged}
}

func (l *Logger) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.with(logrus.Fields{key: value})
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.with(fields)
}

// WithContext copies the request id and actor set by the HTTP middleware.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	extra := logrus.Fields{}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		extra["request_id"] = requestID
	}
	if actor, ok := ctx.Value(ActorKey).(string); ok && actor != "" {
		extra["actor"] = actor
	}
	return l.with(extra)
}

func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

func (l *Logger) WithBookingReference(reference string) *Logger {
	return l.WithField("booking_reference", reference)
}

func (l *Logger) Debug(msg string) { l.entry().Debug(msg) }
func (l *Logger) Info(msg string)  { l.entry().Info(msg) }
func (l *Logger) Warn(msg string)  { l.entry().Warn(msg) }
func (l *Logger) Error(msg string) { l.entry().Error(msg) }
func (l *Logger) Fatal(msg string) { l.entry().Fatal(msg) }

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

// event logs msg at info level with a "type" field plus details.
func (l *Logger) event(kind, msg string, fields, details map[string]interface{}) {
	fields["type"] = kind
	l.with(fields).with(details).Info(msg)
}

func (l *Logger) LogBookingEvent(reference string, event string, details map[string]interface{}) {
	l.event("booking_event", "Booking "+event, map[string]interface{}{
		"booking_reference": reference,
		"event":             event,
	}, details)
}

func (l *Logger) LogPaymentEvent(orderID string, event string, amount string, currency string) {
	l.event("payment_event", "Payment "+event, map[string]interface{}{
		"order_id": orderID,
		"event":    event,
		"amount":   amount,
		"currency": currency,
	}, nil)
}

func (l *Logger) LogAdminAction(resource, action, recordID string, details map[string]interface{}) {
	l.event("admin_action", "Admin action performed", map[string]interface{}{
		"resource":  resource,
		"action":    action,
		"record_id": recordID,
	}, details)
}

// LogSecurityEvent is always emitted at warn level.
func (l *Logger) LogSecurityEvent(eventType string, details map[string]interface{}) {
	l.with(logrus.Fields{"event_type": eventType, "type": "security_event"}).
		with(details).
		Warn("Security event detected")
}

// LogAPIRequest picks the level from the status code: 5xx error, 4xx warn.
func (l *Logger) LogAPIRequest(method, endpoint string, statusCode int, duration time.Duration, requestID string) {
	fields := logrus.Fields{
		"method":      method,
		"endpoint":    endpoint,
		"status_code": statusCode,
		"duration_ms": duration.Milliseconds(),
		"type":        "api_request",
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}

	entry := l.with(fields)
	switch {
	case statusCode >= 500:
		entry.Error("API request processed")
	case statusCode >= 400:
		entry.Warn("API request processed")
	default:
		entry.Info("API request processed")
	}
}

func (l *Logger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}
