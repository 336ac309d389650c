package logutils

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "INFO"

// LogSettings configures the process logger.
type LogSettings struct {
	Enabled         bool   `json:"Enabled"`
	Level           string `json:"Level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	File            string `json:"File"`
	MaxSize         int    `json:"MaxSize" validate:"gte=0"`
	MaxBackups      int    `json:"MaxBackups" validate:"gte=0"`
	CompressRotated bool   `json:"CompressRotated"`
	JSONFormat      bool   `json:"JSONFormat"`
}

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// ZapLogger returns the process wide logger. It discards everything until
// OverrideRootLogWithConfig or OverrideRootLogger is called.
func ZapLogger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// OverrideRootLogger replaces the process wide logger.
func OverrideRootLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// OverrideRootLogWithConfig builds a logger from settings and installs it.
func OverrideRootLogWithConfig(settings LogSettings) error {
	if !settings.Enabled {
		OverrideRootLogger(zap.NewNop())
		return nil
	}

	level := settings.Level
	if level == "" {
		level = defaultLogLevel
	}
	zapLevel, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if settings.JSONFormat {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var syncer zapcore.WriteSyncer
	if settings.File != "" {
		syncer = ZapSyncerWithRotation(FileOptions{
			Filename:   settings.File,
			MaxSize:    settings.MaxSize,
			MaxBackups: settings.MaxBackups,
			Compress:   settings.CompressRotated,
		})
	} else {
		syncer = zapcore.Lock(os.Stderr)
	}

	OverrideRootLogger(zap.New(zapcore.NewCore(encoder, syncer, zapLevel), zap.AddCaller()))
	return nil
}
