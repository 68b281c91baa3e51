package providers

import (
	"chatsplit/internal/structures"
	"fmt"
	"github.com/rs/zerolog"
	"io"
	"os"
	"path/filepath"
	"time"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeLoad
	TypeWrite
)

const logFileName = "chatsplit.log"

func (t TypeEnum) String() string {
	switch t {
	case TypeLoad:
		return "load"
	case TypeWrite:
		return "write"
	default:
		return "app"
	}
}

// GetLogTypeByCommand maps a command name onto the log stream it reports to.
func GetLogTypeByCommand(command string) TypeEnum {
	switch command {
	case structures.CommandSplit:
		return TypeWrite
	case structures.CommandFirstIDs, structures.CommandSummary, structures.CommandVerify:
		return TypeLoad
	default:
		return TypeApp
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	logger zerolog.Logger
	file   *os.File
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Error().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Warn().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Debug().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.logger.Info().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.logger.Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return NewLogProviderWithWriter(conf, console)
}

// NewLogProviderWithWriter logs human-readable lines to console and, when
// logger.dir is set, JSON lines to chatsplit.log inside it.
func NewLogProviderWithWriter(conf *structures.Config, console io.Writer) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	provider := &LogProvider{}
	writers := []io.Writer{console}

	if conf.Logger.Dir != "" {
		mode := os.FileMode(conf.Logger.Mode)
		if mode == 0 {
			mode = 0644
		}
		file, err := os.OpenFile(filepath.Join(conf.Logger.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		provider.file = file
		writers = append(writers, file)
	}

	provider.logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return provider, nil
}
