// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive format tests
// - 2026-10-13 v0.2.0: Sorted fields and run id
// - 2026-10-19 v0.3.0: Caller column, logfmt bare words

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/clite/foundation/core/error"
)

func testEntry() *Entry {
	return &Entry{
		Time:    time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC),
		Level:   LevelInfo,
		Message: "statement executed",
		Logger:  "interp",
		RunID:   "0f8fad5b-d9cb-469f-a165-70867728950e",
		Fields:  Fields{"kind": "print", "index": 12},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{" console ", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("ParseFormat() error code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
			if !tt.wantErr && got.String() != strings.ToLower(strings.TrimSpace(tt.input)) {
				t.Errorf("Format.String() = %v", got.String())
			}
		})
	}

	if Format(42).String() != "unknown" {
		t.Errorf("Format(42).String() = %v, want unknown", Format(42).String())
	}
}

func TestJSONFormat(t *testing.T) {
	entry := testEntry()
	entry.Caller = "run.go:42"

	data, err := formatterFor(FormatJSON).Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	checks := map[string]interface{}{
		"level":     "info",
		"message":   "statement executed",
		"logger":    "interp",
		"run_id":    entry.RunID,
		"caller":    "run.go:42",
		"kind":      "print",
		"index":     float64(12),
		"timestamp": "2026-10-13T09:30:00Z",
	}
	for k, want := range checks {
		if result[k] != want {
			t.Errorf("JSON %s = %v, want %v", k, result[k], want)
		}
	}
}

func TestJSONFormatErrorDetails(t *testing.T) {
	entry := testEntry()
	entry.Err = mdwerror.Newf(mdwerror.CodeTypeError, "cannot assign bool to int").WithDetail("index", 4)

	data, err := formatterFor(FormatJSON).Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if result["error"] != "cannot assign bool to int" {
		t.Errorf("error = %v", result["error"])
	}
	details, ok := result["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing in %s", data)
	}
	if details["code"] != "TYPE_ERROR" || details["severity"] != "low" {
		t.Errorf("error_details = %v", details)
	}

	entry.Err = errors.New("plain")
	data, _ = formatterFor(FormatJSON).Format(entry)
	if strings.Contains(string(data), "error_details") {
		t.Errorf("foreign errors should have no details, got %s", data)
	}
}

func TestTextFormat(t *testing.T) {
	tests := []struct {
		name  string
		entry func() *Entry
		want  string
	}{
		{
			name: "full entry",
			entry: func() *Entry {
				e := testEntry()
				e.Err = errors.New("boom")
				return e
			},
			want: `09:30:00 [INF] {interp} (run=0f8fad5b) statement executed [index=12 kind=print] error="boom"` + "\n",
		},
		{
			name: "bare entry with caller",
			entry: func() *Entry {
				return &Entry{
					Time:    time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC),
					Level:   LevelWarn,
					Message: "hello",
					Caller:  "main.go:7",
				}
			},
			want: "09:30:00 [WRN] <main.go:7> hello\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := formatterFor(FormatText).Format(tt.entry())
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Format() = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	entry := testEntry()

	colored, _ := formatterFor(FormatConsole).Format(entry)
	if !strings.HasPrefix(string(colored), levelColors[LevelInfo]) {
		t.Errorf("Format() should start with the level color, got %q", colored)
	}
	if !strings.HasSuffix(string(colored), colorReset+"\n") {
		t.Errorf("Format() should end with a reset, got %q", colored)
	}

	plain, _ := formatterFor(FormatText).Format(entry)
	stripped := strings.TrimSuffix(strings.TrimPrefix(string(colored), levelColors[LevelInfo]), colorReset+"\n") + "\n"
	if stripped != string(plain) {
		t.Errorf("console and text differ beyond color: %q vs %q", stripped, plain)
	}
}

func TestLogfmtFormat(t *testing.T) {
	entry := testEntry()
	entry.Fields["value"] = "a b"
	entry.Err = errors.New("boom")

	data, err := formatterFor(FormatLogfmt).Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-13T09:30:00Z level=info message="statement executed" logger=interp ` +
		`run_id=0f8fad5b-d9cb-469f-a165-70867728950e index=12 kind=print value="a b" error="boom"` + "\n"
	if string(data) != want {
		t.Errorf("Format() = %q, want %q", data, want)
	}
}

func TestFormatterFor(t *testing.T) {
	tests := []struct {
		format Format
		want   Formatter
	}{
		{FormatJSON, jsonFormatter{}},
		{FormatText, textFormatter{}},
		{FormatConsole, textFormatter{color: true}},
		{FormatLogfmt, logfmtFormatter{}},
		{Format(99), textFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := formatterFor(tt.format); got != tt.want {
				t.Errorf("formatterFor(%v) = %#v, want %#v", tt.format, got, tt.want)
			}
		})
	}
}

func BenchmarkTextFormat(b *testing.B) {
	f := formatterFor(FormatText)
	entry := testEntry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
