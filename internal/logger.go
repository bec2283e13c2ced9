package internal

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var (
	logLevel = LogLevelInfo
	zapLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger   = newConsoleLogger()
)

// LoggerOptions selects where log lines go
type LoggerOptions struct {
	// FilePath receives JSON lines, rotated by size. Empty disables the file.
	FilePath string
	// Console mirrors log lines to stderr. The TUI turns this off so logs never
	// paint over the screen.
	Console bool
}

func newConsoleLogger() *zap.SugaredLogger {
	return zap.New(consoleCore()).Sugar()
}

func consoleCore() zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeCaller = nil
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), zapLevel)
}

func fileCore(path string) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // Megabytes
		MaxBackups: 3,
		MaxAge:     30, // Days
		Compress:   true,
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(rotator), zapLevel), nil
}

// InitLogger replaces the default stderr logger. The returned function flushes
// buffered entries and should be deferred by the caller. When the log file
// cannot be opened the logger is still replaced by the remaining cores, so
// with Console off nothing reaches stderr, and the file error is returned.
func InitLogger(opts LoggerOptions) (func() error, error) {
	var cores []zapcore.Core
	var fileErr error
	if opts.FilePath != "" {
		core, err := fileCore(opts.FilePath)
		if err != nil {
			fileErr = err
		} else {
			cores = append(cores, core)
		}
	}
	if opts.Console {
		cores = append(cores, consoleCore())
	}

	l := zap.New(zapcore.NewTee(cores...))
	logger = l.Sugar()
	return l.Sync, fileErr
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	logLevel = level
	switch level {
	case LogLevelError:
		zapLevel.SetLevel(zapcore.ErrorLevel)
	case LogLevelWarn:
		zapLevel.SetLevel(zapcore.WarnLevel)
	case LogLevelDebug:
		zapLevel.SetLevel(zapcore.DebugLevel)
	default:
		zapLevel.SetLevel(zapcore.InfoLevel)
	}
}

// SetVerbose enables verbose (debug) logging
func SetVerbose(verbose bool) {
	if verbose {
		SetLogLevel(LogLevelDebug)
	} else {
		SetLogLevel(LogLevelInfo)
	}
}

func logError(format string, args ...interface{}) {
	if logLevel >= LogLevelError {
		logger.Errorf(format, args...)
	}
}

func logWarn(format string, args ...interface{}) {
	if logLevel >= LogLevelWarn {
		logger.Warnf(format, args...)
	}
}

func logInfo(format string, args ...interface{}) {
	if logLevel >= LogLevelInfo {
		logger.Infof(format, args...)
	}
}

func logDebug(format string, args ...interface{}) {
	if logLevel >= LogLevelDebug {
		logger.Debugf(format, args...)
	}
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	logError(format, args...)
}

// LogWarn logs a warning message
func LogWarn(format string, args ...interface{}) {
	logWarn(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	logInfo(format, args...)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	logDebug(format, args...)
}
