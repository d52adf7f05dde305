// ============================================================================
// PlanForge - Production Planning Optimization
// ============================================================================
//
// Package:     logging
// Description: Text and JSON formatters for log entries
// License:     MIT
// ============================================================================

package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs (default for a CLI)
	FormatText Format = iota

	// FormatJSON outputs structured JSON logs
	FormatJSON
)

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter renders a log entry to bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{TimestampFormat: time.RFC3339}
	}
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// TextFormatter formats entries as single-line human-readable text
type TextFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" ")
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	// Deterministic field order keeps output diffable
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter formats entries as JSON objects
type JSONFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+4)

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	for k, v := range entry.Fields {
		data[k] = v
	}
	if entry.Err != nil {
		data["error"] = entry.Err.Error()
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
