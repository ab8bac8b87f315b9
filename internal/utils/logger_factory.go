package utils

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	pathutils "github.com/temirov/brancher/internal/utils/path"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	logFileMaximumSizeMegabytesConstant  = 1
	logFileMaximumBackupsConstant        = 2
	logFileMaximumAgeDaysConstant        = 30
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerOptions describes the requested logger. FilePath, when set, adds a
// rotated JSON log file next to the diagnostic stream on standard error.
type LoggerOptions struct {
	Level    LogLevel
	Format   LogFormat
	FilePath string
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct {
	homeExpander *pathutils.HomeExpander
}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return NewLoggerFactoryWithHomeExpander(pathutils.NewHomeExpander())
}

// NewLoggerFactoryWithHomeExpander constructs a logger factory resolving "~" in log file paths with the provided expander.
func NewLoggerFactoryWithHomeExpander(homeExpander *pathutils.HomeExpander) *LoggerFactory {
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	return &LoggerFactory{homeExpander: homeExpander}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	return factory.CreateLoggerWithOptions(LoggerOptions{Level: requestedLogLevel, Format: requestedLogFormat})
}

// CreateLoggerWithOptions produces a zap.Logger writing to standard error and, optionally, to a log file.
func (factory *LoggerFactory) CreateLoggerWithOptions(options LoggerOptions) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[LogLevel(strings.ToLower(strings.TrimSpace(string(options.Level))))]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, options.Level)
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder

	var diagnosticEncoder zapcore.Encoder
	switch LogFormat(strings.ToLower(strings.TrimSpace(string(options.Format)))) {
	case LogFormatStructured:
		diagnosticEncoder = zapcore.NewJSONEncoder(encoderConfiguration)
	case LogFormatConsole:
		diagnosticEncoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, options.Format)
	}

	levelEnabler := zap.NewAtomicLevelAt(zapLogLevel)
	cores := []zapcore.Core{
		zapcore.NewCore(diagnosticEncoder, zapcore.AddSync(NewFlushingWriter(os.Stderr)), levelEnabler),
	}

	logFilePath := strings.TrimSpace(options.FilePath)
	if len(logFilePath) > 0 {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfiguration),
			zapcore.AddSync(factory.createRotatingFileWriter(logFilePath)),
			levelEnabler,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func (factory *LoggerFactory) createRotatingFileWriter(logFilePath string) *lumberjack.Logger {
	expandedPath := logFilePath
	if factory != nil && factory.homeExpander != nil {
		expandedPath = factory.homeExpander.Expand(logFilePath)
	}
	return &lumberjack.Logger{
		Filename:   expandedPath,
		MaxSize:    logFileMaximumSizeMegabytesConstant,
		MaxBackups: logFileMaximumBackupsConstant,
		MaxAge:     logFileMaximumAgeDaysConstant,
	}
}
