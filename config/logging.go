package config

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Debug = false

// DebugLog is the diagnostics log. It is a no-op until InitDebugLog runs, so
// callers never need a nil check.
var DebugLog = zap.NewNop().Sugar()

// InitDebugLog opens <dataDir>/debug.log. The terminal belongs to the UI, so
// the log never writes to stdout. Warnings and errors are always recorded;
// debug entries only with PPERCENT_DEBUG set.
func InitDebugLog(dataDir string) {
	level := zap.WarnLevel
	if CheckDebug() {
		Debug = true
		level = zap.DebugLevel
	}

	logPath := filepath.Join(dataDir, "debug.log")
	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // Megabytes
		MaxBackups: 3,
		MaxAge:     30, // Days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		level,
	)

	DebugLog = zap.New(core, zap.AddCaller()).Sugar()
	DebugLog.Debugw("debug logging started", "path", logPath)
}

// SyncDebugLog flushes buffered entries.
func SyncDebugLog() {
	_ = DebugLog.Sync()
}
