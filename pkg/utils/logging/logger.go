package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where the logger writes. Zero values select the CLI defaults.
type Options struct {
	// Dir is the directory log files are created in (default "logs")
	Dir string

	// Console receives human-readable output (default stdout)
	Console zapcore.WriteSyncer

	// ConsoleLevel is the minimum console level (default Info)
	ConsoleLevel zapcore.Level

	// Now stamps the log file name (default time.Now)
	Now func() time.Time
}

// InitLogger initializes a zap logger with console and file outputs.
// env prefixes the log file name, e.g. logs/test_2025-03-01_09-30-00.log
func InitLogger(env string) (*zap.Logger, error) {
	return New(env, Options{})
}

// New builds a logger that tees a coloured console core with a JSON file core.
// The file core always records Debug, so a full solve can be replayed from the file.
func New(env string, opts Options) (*zap.Logger, error) {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.Console == nil {
		opts.Console = zapcore.AddSync(os.Stdout)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFileName := filepath.Join(opts.Dir, FileName(env, opts.Now()))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), opts.Console, opts.ConsoleLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), zapcore.DebugLevel),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger.With(zap.String("env", env)), nil
}

// FileName returns the log file name for env started at t
func FileName(env string, t time.Time) string {
	if env == "" {
		env = "default"
	}
	return fmt.Sprintf("%s_%s.log", env, t.Format("2006-01-02_15-04-05"))
}
