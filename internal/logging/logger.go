package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "ECOTRIP_LOG_LEVEL"

// LogFileEnvVar overrides where log output goes. The wizard owns stdout, so
// interactive sessions default to a file in the config directory.
const LogFileEnvVar = "ECOTRIP_LOG_FILE"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks ECOTRIP_LOG_LEVEL; if path is empty, it checks
// ECOTRIP_LOG_FILE and then falls back to stderr.
// If no level is set at all, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	if envPath := os.Getenv(LogFileEnvVar); envPath != "" {
		path = envPath
	}
	if path == "" {
		path = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "stderr" || path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the environment only.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer
// style loggers.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogFieldChange logs a trip request field update
func LogFieldChange(session, field string, value any) {
	Debug("Field updated",
		zap.String("session", session),
		zap.String("field", field),
		zap.Any("value", value),
	)
}

// LogOverlayChange logs an overlay transition
func LogOverlayChange(session, from, to, cause string) {
	Info("Overlay changed",
		zap.String("session", session),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("cause", cause),
	)
}

// LogStepChange logs a step cursor move
func LogStepChange(session, from, to string) {
	Info("Step changed",
		zap.String("session", session),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogLocationRequest logs the start of a geolocation lookup
func LogLocationRequest(session string, requestID int, locator string) {
	Info("Location requested",
		zap.String("session", session),
		zap.Int("request_id", requestID),
		zap.String("locator", locator),
	)
}

// LogLocationResult logs the outcome of a geolocation lookup. kind is empty
// on success.
func LogLocationResult(session string, requestID int, kind string, found bool, err error) {
	fields := []zap.Field{
		zap.String("session", session),
		zap.Int("request_id", requestID),
		zap.Bool("found", found),
	}
	if err != nil {
		fields = append(fields, zap.String("kind", kind), zap.Error(err))
		Warn("Location lookup failed", fields...)
		return
	}
	Info("Location lookup finished", fields...)
}

// LogGeocodeRequest logs a reverse-geocoding round trip. The API key is
// never logged.
func LogGeocodeRequest(lat, lon string, statusCode int, elapsed time.Duration) {
	Info("Reverse geocode request",
		zap.String("lat", lat),
		zap.String("lon", lon),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
