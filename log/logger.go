package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines an interface for application logger.
type Logger interface {
	// Info logs the message at the info level.
	Info(msg string, fields ...zapcore.Field)
	// Warn logs the message at the warn level.
	Warn(msg string, fields ...zapcore.Field)
	// Error logs the message at the error level.
	Error(msg string, fields ...zapcore.Field)
	// Debug logs the message at the debug level.
	Debug(msg string, fields ...zapcore.Field)
}

var _ Logger = (*loggerImpl)(nil)

type loggerImpl struct {
	zapLogger *zap.Logger
}

// NewLogger creates a new logger.
// If fileName is non-empty, it pipes logs to file and stdout.
// if isProduction is true, uses the production config. Otherwise, development.
func NewLogger(isProduction bool, fileName string, logLevel string) (Logger, error) {
	var config zap.Config
	if isProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	if fileName != "" {
		config.OutputPaths = append(config.OutputPaths, fileName)
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, fileName)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{
		zapLogger: zapLogger,
	}, nil
}

// NewNoOpLogger returns a logger that discards all messages. Useful in tests.
func NewNoOpLogger() Logger {
	return &loggerImpl{
		zapLogger: zap.NewNop(),
	}
}

// Debug implements Logger.
func (l *loggerImpl) Debug(msg string, fields ...zapcore.Field) {
	l.zapLogger.Debug(msg, fields...)
}

// Error implements Logger.
func (l *loggerImpl) Error(msg string, fields ...zapcore.Field) {
	l.zapLogger.Error(msg, fields...)
}

// Info implements Logger.
func (l *loggerImpl) Info(msg string, fields ...zapcore.Field) {
	l.zapLogger.Info(msg, fields...)
}

// Warn implements Logger.
func (l *loggerImpl) Warn(msg string, fields ...zapcore.Field) {
	l.zapLogger.Warn(msg, fields...)
}
