// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BuildTypeDev     = "dev"
	BuildTypeRelease = "release"

	LogFilename = "fcdec-latest-run.log"
)

// NewLogger returns a sugared logger for buildType.
//
// Release builds write info and above to LogFilename inside logDir.
// Anything else logs debug and above to stderr with coloured levels.
func NewLogger(buildType, logDir string) (*zap.SugaredLogger, error) {
	var cfg zap.Config

	if buildType == BuildTypeRelease {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", logDir, err)
		}

		cfg = zap.NewProductionConfig()
		cfg.OutputPaths = []string{filepath.Join(logDir, LogFilename)}
		cfg.Encoding = "console"
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.EncodeCaller = nil
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	cfg.EncoderConfig.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%-12s", name))
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
