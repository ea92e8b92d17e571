// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "debug", Format: FormatJSON, Timestamp: true, Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "info", Format: FormatConsole, Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("console test")

	output := buf.String()
	if strings.Contains(output, `"level"`) {
		t.Errorf("expected console format (not JSON): %s", output)
	}
	if !strings.Contains(output, "console test") {
		t.Errorf("expected message in output: %s", output)
	}
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tests := []struct {
		format string
		want   string
	}{
		{"json", FormatJSON},
		{"console", FormatConsole},
		{"CONSOLE", FormatConsole},
		{"auto", FormatJSON}, // a buffer is never a terminal
		{"", FormatJSON},
		{"xml", FormatJSON},
	}

	for _, tt := range tests {
		if got := resolveFormat(tt.format, &buf); got != tt.want {
			t.Errorf("resolveFormat(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"disabled", zerolog.Disabled},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)

	SetLogger(zerolog.New(&buf))

	logger := WithComponent("catalog")
	logger.Info().Msg("component message")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)

	SetLogger(zerolog.New(&buf))

	Err(errors.New("upstream unavailable")).Msg("error occurred")

	if !strings.Contains(buf.String(), "upstream unavailable") {
		t.Errorf("expected error in output: %s", buf.String())
	}
}
