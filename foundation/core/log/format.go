// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages: JSON, text,
//              colored console text and logfmt. Fields are written in
//              sorted key order so diagnostics of two runs can be diffed
//              line by line.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-13 v0.2.0: Sorted fields, run id context
// - 2026-10-19 v0.3.0: Formatters write into one buffer, console shares text

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

// Format selects how entries are rendered
type Format int

const (
	FormatJSON Format = iota
	FormatText
	// FormatConsole is text colored by level, for terminals
	FormatConsole
	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

var formatNames = [...]string{"json", "text", "console", "logfmt"}

func (f Format) String() string {
	if f < FormatJSON || f > FormatLogfmt {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatText, mdwerror.Newf(mdwerror.CodeInvalidConfig, "unknown log format %q", name).
		WithDetail("value", name)
}

// Formatter renders one entry, including its trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

func formatterFor(format Format) Formatter {
	switch format {
	case FormatJSON:
		return jsonFormatter{}
	case FormatConsole:
		return textFormatter{color: true}
	case FormatLogfmt:
		return logfmtFormatter{}
	default:
		return textFormatter{}
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type jsonFormatter struct{}

func (jsonFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Time.Format(time.RFC3339)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RunID != "" {
		data["run_id"] = entry.RunID
	}
	if entry.Caller != "" {
		data["caller"] = entry.Caller
	}
	if entry.Err != nil {
		data["error"] = entry.Err.Error()
		if e, ok := mdwerror.As(entry.Err); ok {
			data["error_details"] = e
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// level colors for the console format, indexed by Level
var levelColors = [...]string{
	"\033[37m", // trace: white
	"\033[36m", // debug: cyan
	"\033[32m", // info: green
	"\033[33m", // warn: yellow
	"\033[31m", // error: red
}

const colorReset = "\033[0m"

type textFormatter struct {
	color bool
}

func (f textFormatter) Format(entry *Entry) ([]byte, error) {
	var b bytes.Buffer

	colored := f.color && int(entry.Level) < len(levelColors) && entry.Level >= 0
	if colored {
		b.WriteString(levelColors[entry.Level])
	}

	b.WriteString(entry.Time.Format("15:04:05"))
	fmt.Fprintf(&b, " [%s]", entry.Level.tag())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	if entry.RunID != "" {
		fmt.Fprintf(&b, " (run=%s)", shortID(entry.RunID))
	}
	if entry.Caller != "" {
		fmt.Fprintf(&b, " <%s>", entry.Caller)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range entry.Fields.sorted() {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}
	if entry.Err != nil {
		fmt.Fprintf(&b, " error=%q", entry.Err.Error())
	}

	if colored {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

type logfmtFormatter struct{}

func (logfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b bytes.Buffer
	pair := func(key string, value interface{}) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte('=')
		switch v := value.(type) {
		case string:
			b.WriteString(logfmtQuote(v))
		case error:
			b.WriteString(strconv.Quote(v.Error()))
		default:
			fmt.Fprint(&b, v)
		}
	}

	pair("timestamp", entry.Time.Format(time.RFC3339))
	pair("level", entry.Level.String())
	pair("message", entry.Message)
	if entry.Logger != "" {
		pair("logger", entry.Logger)
	}
	if entry.RunID != "" {
		pair("run_id", entry.RunID)
	}
	if entry.Caller != "" {
		pair("caller", entry.Caller)
	}
	for _, k := range entry.Fields.sorted() {
		pair(k, entry.Fields[k])
	}
	if entry.Err != nil {
		pair("error", entry.Err)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// logfmtQuote leaves bare words unquoted
func logfmtQuote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
