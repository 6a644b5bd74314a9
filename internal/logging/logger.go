package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gcovaudit/internal/constants"
	"github.com/wizzomafizzo/gcovaudit/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	Disabled   = zerolog.Disabled
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	Path       string
	Level      zerolog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// New creates a new context with a logger attached.
// A disabled level never touches the filesystem. Otherwise Writer wins when
// set (tests), then Path, then the XDG state log file resolved through fs.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	if config.Level == Disabled {
		return zerolog.Nop().WithContext(ctx), nil
	}

	writer := config.Writer
	if writer == nil {
		logFile := config.Path
		if logFile == "" {
			if fs == nil {
				return nil, errors.New("filesystem required when no writer provided")
			}
			path, err := storage.New(fs).GetLogPath()
			if err != nil {
				return nil, fmt.Errorf("failed to get log path: %w", err)
			}
			logFile = path
		}
		writer = createLumberjackLogger(logFile, config)
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("app", constants.AppName).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a config level name into a zerolog level.
// An empty name means logging is disabled.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return Disabled, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return Disabled, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

func createLumberjackLogger(logFile string, config Config) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    defaultMaxLogSizeMB,
		MaxBackups: defaultMaxLogBackups,
		MaxAge:     defaultMaxLogAgeDays,
	}
	if config.MaxSize > 0 {
		lj.MaxSize = config.MaxSize
	}
	if config.MaxBackups > 0 {
		lj.MaxBackups = config.MaxBackups
	}
	if config.MaxAge > 0 {
		lj.MaxAge = config.MaxAge
	}
	return lj
}
