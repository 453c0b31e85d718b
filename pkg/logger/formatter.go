package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[37m"
)

// JSONFormatter writes one JSON object per line. error values in the
// entry data are flattened to their message.
type JSONFormatter struct {
	TimestampFormat string
	AppName         string
	Version         string
}

// TextFormatter writes "time [LEVEL] [app] message k=v ..." with the
// fields sorted by key.
type TextFormatter struct {
	TimestampFormat string
	Colors          bool
	AppName         string
}

func entryBuffer(entry *logrus.Entry) *bytes.Buffer {
	if entry.Buffer != nil {
		return entry.Buffer
	}
	return &bytes.Buffer{}
}

func (f *JSONFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	record := make(map[string]interface{}, len(entry.Data)+6)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		record[k] = v
	}
	record["timestamp"] = entry.Time.Format(layout)
	record["level"] = entry.Level.String()
	record["message"] = entry.Message
	if f.AppName != "" {
		record["app"] = f.AppName
	}
	if f.Version != "" {
		record["version"] = f.Version
	}
	if entry.HasCaller() {
		record["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	b := entryBuffer(entry)
	if err := json.NewEncoder(b).Encode(record); err != nil {
		return nil, fmt.Errorf("failed to encode log entry: %w", err)
	}
	return b.Bytes(), nil
}

func levelColor(level logrus.Level) string {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return colorRed
	case logrus.WarnLevel:
		return colorYellow
	case logrus.InfoLevel:
		return colorCyan
	default:
		return colorGray
	}
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02 15:04:05"
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		level = levelColor(entry.Level) + level + colorReset
	}

	b := entryBuffer(entry)
	b.WriteString(entry.Time.Format(layout))
	b.WriteString(" [" + level + "] ")
	if f.AppName != "" {
		b.WriteString("[" + f.AppName + "] ")
	}
	if entry.HasCaller() {
		fmt.Fprintf(b, "[%s:%d] ", entry.Caller.File, entry.Caller.Line)
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
