package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"montage/internal/config"
	"montage/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format to fail")
	}
}

func TestNewFromConfigCreatesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	logger.Info("engine started", logging.Error(nil))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "montage.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "engine started") {
		t.Fatalf("expected message in log file, got %q", string(data))
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should vanish")
	if logger.Enabled(nil, 8) {
		t.Fatal("expected nop logger to disable even high levels")
	}
}

func TestWithComponentToleratesNil(t *testing.T) {
	logger := logging.WithComponent(nil, "store")
	logger.Info("no panic expected")
}
