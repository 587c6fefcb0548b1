package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clite.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg := Default()

	if cfg.General.Name != "clite" {
		t.Errorf("General.Name = %v, want clite", cfg.General.Name)
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.DataDir != "/home/tester/.local/share/clite" {
		t.Errorf("General.DataDir = %v", cfg.General.DataDir)
	}
	if cfg.Journal.Path != "/home/tester/.local/share/clite/journal.db" {
		t.Errorf("Journal.Path = %v", cfg.Journal.Path)
	}
	if cfg.Journal.Enabled {
		t.Error("Journal.Enabled should default to false")
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should default to true")
	}
	if cfg.BoolStyle() != value.BoolWords {
		t.Errorf("BoolStyle() = %v, want words", cfg.BoolStyle())
	}
	if cfg.ZeroUninitialized() {
		t.Error("ZeroUninitialized() should default to false")
	}
	if cfg.Retention() != 30*24*time.Hour {
		t.Errorf("Retention() = %v, want 720h", cfg.Retention())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/clite.toml")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
[general]
log_level = "debug"
log_format = "json"
data_dir = "/var/lib/clite"

[output]
bool_style = "numeric"
float_precision = -1
color = false

[semantics]
uninitialized = "zero"

[limits]
timeout = "2s"
max_tokens = 5000

[journal]
enabled = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" || cfg.General.LogFormat != "json" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.BoolStyle() != value.BoolNumeric {
		t.Errorf("BoolStyle() = %v, want numeric", cfg.BoolStyle())
	}
	if cfg.Output.FloatPrecision != -1 || cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.ZeroUninitialized() {
		t.Error("ZeroUninitialized() = false, want true")
	}
	if cfg.Limits.Timeout.Duration != 2*time.Second || cfg.Limits.MaxTokens != 5000 {
		t.Errorf("Limits = %+v", cfg.Limits)
	}

	// Defaults for missing values
	if cfg.General.Name != "clite" {
		t.Errorf("General.Name = %v, want clite (default)", cfg.General.Name)
	}
	if cfg.Journal.Path != "/var/lib/clite/journal.db" {
		t.Errorf("Journal.Path = %v, want it below data_dir", cfg.Journal.Path)
	}
}

func TestLoad_ColorDefaultsToTrue(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[general]\nname = \"x\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color = false, want true when not set")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode mdwerror.Code
		wantText string
	}{
		{"broken toml", "[general\nname = 1", mdwerror.CodeConfigError, "failed to parse config"},
		{"bad duration", "[limits]\ntimeout = \"soon\"", mdwerror.CodeConfigError, "failed to parse config"},
		{"bad level", "[general]\nlog_level = \"loud\"", mdwerror.CodeInvalidConfig, "general.log_level"},
		{"bad format", "[general]\nlog_format = \"xml\"", mdwerror.CodeInvalidConfig, "general.log_format"},
		{"bad bool style", "[output]\nbool_style = \"yesno\"", mdwerror.CodeInvalidConfig, "output.bool_style"},
		{"bad precision", "[output]\nfloat_precision = 40", mdwerror.CodeInvalidConfig, "output.float_precision"},
		{"bad semantics", "[semantics]\nuninitialized = \"random\"", mdwerror.CodeInvalidConfig, "semantics.uninitialized"},
		{"negative tokens", "[limits]\nmax_tokens = -1", mdwerror.CodeInvalidConfig, "limits.max_tokens"},
		{"negative retention", "[journal]\nretention_days = -2", mdwerror.CodeInvalidConfig, "journal.retention_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Fatalf("Load() error = %v, want %s", err, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Load() error = %q, want it to mention %q", err.Error(), tt.wantText)
			}
		})
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	t.Setenv("CLITE_TEST_DIR", "/tmp/clite-test")

	cfg := &Config{
		General: GeneralConfig{DataDir: "$CLITE_TEST_DIR/data"},
		Journal: JournalConfig{Path: "${CLITE_TEST_DIR}/j.db"},
	}
	cfg.expandEnvVars()

	if cfg.General.DataDir != "/tmp/clite-test/data" {
		t.Errorf("DataDir = %v", cfg.General.DataDir)
	}
	if cfg.Journal.Path != "/tmp/clite-test/j.db" {
		t.Errorf("Journal.Path = %v", cfg.Journal.Path)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "[general]\nname = \"from-env\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "from-env" {
		t.Errorf("General.Name = %v, want from-env", cfg.General.Name)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("LoadFromEnv() error = %v, want NOT_FOUND", err)
	}
}
