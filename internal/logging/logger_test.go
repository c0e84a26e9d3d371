package logging

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := map[string]struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		"debug":        {level: "debug", enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		"warn":         {level: "warn", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		"default info": {level: "", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logger, err := New(Options{Level: tt.level})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !logger.Core().Enabled(tt.enabled) {
				t.Fatalf("expected %s to be enabled", tt.enabled)
			}
			if logger.Core().Enabled(tt.muted) {
				t.Fatalf("expected %s to be muted", tt.muted)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWritesFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := New(Options{Level: "info", Development: true, File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("lead stored")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected log line in file sink")
	}
}
