package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logFile string
		want    zapcore.Level
	}{
		{name: "debug level to stdout", level: "debug", want: zapcore.DebugLevel},
		{name: "info level to stdout", level: "info", want: zapcore.InfoLevel},
		{name: "warn level to stdout", level: "warn", want: zapcore.WarnLevel},
		{name: "error level to stdout", level: "error", want: zapcore.ErrorLevel},
		{name: "unknown level falls back to info", level: "verbose", want: zapcore.InfoLevel},
		{name: "info level with log file", level: "info", logFile: filepath.Join(t.TempDir(), "api.log"), want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Log = nil

			if err := Init(tt.level, tt.logFile); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			if Log == nil {
				t.Fatal("Init() succeeded but Log is nil")
			}
			if !Log.Core().Enabled(tt.want) {
				t.Errorf("level %s should be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && Log.Core().Enabled(tt.want-1) {
				t.Errorf("level %s should be disabled", tt.want-1)
			}

			_ = Sync()
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"Error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestL_WithoutInit(t *testing.T) {
	Log = nil

	l := L()
	if l == nil {
		t.Fatal("L() returned nil")
	}
	l.Info("dropped")

	if err := Sync(); err != nil {
		t.Errorf("Sync() with nil logger = %v, want nil", err)
	}
}

func TestInitWithLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	if err := Init("info", logFile); err != nil {
		t.Fatalf("Init() with log file failed: %v", err)
	}

	Log.Info("test message")
	_ = Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}
