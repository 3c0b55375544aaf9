package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	global zerolog.Logger
	once   sync.Once
)

// Init configures the process-wide zerolog logger. Output always goes
// to stdout; when logFilePath is non-empty the same stream is appended
// to that file as well. Safe to call more than once, only the first
// call wins.
func Init(logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
			if err != nil {
				// The logger is not usable yet, stderr is all we have.
				os.Stderr.WriteString("logger: cannot open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		global = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)
		log.Logger = global
	})
}

// WithFields returns a context carrying a child logger annotated with
// the given fields. Downstream log calls pick it up automatically.
func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	l := global.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func from(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &global
	}
	return l
}

// Debug logs at debug level.
func Debug(ctx context.Context, msg string, args ...interface{}) {
	from(ctx).Debug().Msgf(msg, args...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, args ...interface{}) {
	from(ctx).Info().Msgf(msg, args...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, args ...interface{}) {
	from(ctx).Warn().Msgf(msg, args...)
}

// Error logs at error level. When the only argument is an error it is
// attached as a structured field instead of being formatted into msg.
func Error(ctx context.Context, msg string, args ...interface{}) {
	l := from(ctx)
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
	}
	l.Error().Msgf(msg, args...)
}
