// Package logger carries a process-global structured logger over zap. All
// packages log through it with message + key/value pairs.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

var global = zap.NewNop().Sugar()

// Init replaces the global logger according to cfg. Before Init is called the
// global logger discards everything, which is what tests want.
func Init(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format == "console" {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	log, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = log.Sugar()

	return nil
}

func Debug(msg string, keysAndValues ...any) {
	global.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	global.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	global.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	global.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() error {
	return global.Sync()
}
