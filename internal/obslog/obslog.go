// Copyright 2026 The cardanotx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package obslog is a thin wrapper around go.uber.org/zap, grounded on
// blinklabs-io/shai's internal/logging: a single process-wide logger
// configured once from a level string, handed out via GetLogger rather
// than threaded through every constructor.
package obslog

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	configureOne sync.Once
	configureMu  sync.Mutex
)

// Configure builds the process-wide logger at the given level ("debug",
// "info", "warn", "error"; unrecognized values fall back to "info").
// Safe to call more than once — a later call replaces the logger the
// next time GetLogger is asked for it.
func Configure(level string) {
	configureMu.Lock()
	defer configureMu.Unlock()
	globalLogger = newLogger(level)
}

func newLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		// zap's production config only fails to build on a malformed
		// encoder/sink registration, never on the inputs we pass here.
		panic(err)
	}
	return logger.With(zap.String("component", "cardanotx"))
}

// GetLogger returns the process-wide logger, configuring it at "info"
// level on first use if Configure was never called.
func GetLogger() *zap.Logger {
	configureMu.Lock()
	needsDefault := globalLogger == nil
	configureMu.Unlock()
	if needsDefault {
		configureOne.Do(func() {
			configureMu.Lock()
			if globalLogger == nil {
				globalLogger = newLogger("info")
			}
			configureMu.Unlock()
		})
	}
	configureMu.Lock()
	defer configureMu.Unlock()
	return globalLogger
}
