// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Dev(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(BuildTypeDev, "")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("dev logger does not log at debug level")
	}
}

func TestNewLogger_Release(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewLogger(BuildTypeRelease, dir)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("release logger logs at debug level")
	}

	logger.Named("fcdec").Infow("Rendered song", "samples", 42)
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, LogFilename))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "Rendered song") {
		t.Errorf("log file = %q, want the logged message", data)
	}
}
