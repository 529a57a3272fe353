package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"TEXT", FormatText},
		{"xml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelWarn),
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout(""),
	)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info message emitted below warn level: %q", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestTraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout(""),
	)

	logger.Trace("fine grained")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name in output: %q", buf.String())
	}
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatJSON),
		WithTimeLayout(""),
	).With(slog.String("component", "parser"))

	logger.Info("ready")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if record["component"] != "parser" {
		t.Errorf("attached attr missing: %v", record)
	}

	if record["msg"] != "ready" {
		t.Errorf("message missing: %v", record)
	}
}

func TestWrap(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("base level changed: %v", base.Level())
	}

	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped level = %v, want %v", wrapped.Level(), LevelDebug)
	}
}

func TestPrettyOutputColors(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout(""))
	logger.Info("colorized", slog.Int("count", 3))

	out := buf.String()
	if !strings.Contains(out, colorGreen) {
		t.Errorf("expected level color in pretty output: %q", out)
	}

	if !strings.Contains(out, "count") || !strings.Contains(out, "3") {
		t.Errorf("attr missing from pretty output: %q", out)
	}
}

func TestZeroLoggerDiscards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Error("nowhere")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v", logger.Level())
	}
}
