package libemit

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger adapts a zerolog.Logger to Logger. Fields added through WithField
// become zerolog context fields.
func NewZerologLogger(l zerolog.Logger) Logger {
	return zerologLogger{l: l}
}

func (z zerologLogger) WithField(key string, value any) Logger {
	return zerologLogger{l: z.l.With().Interface(key, value).Logger()}
}

func (z zerologLogger) Debug(args ...any) { z.l.Debug().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }

func (z zerologLogger) Debugln(args ...any) { z.l.Debug().Msg(sprintln(args...)) }

func (z zerologLogger) Info(args ...any) { z.l.Info().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Infof(format string, args ...any) { z.l.Info().Msgf(format, args...) }

func (z zerologLogger) Infoln(args ...any) { z.l.Info().Msg(sprintln(args...)) }

func (z zerologLogger) Warn(args ...any) { z.l.Warn().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Warnf(format string, args ...any) { z.l.Warn().Msgf(format, args...) }

func (z zerologLogger) Warnln(args ...any) { z.l.Warn().Msg(sprintln(args...)) }

func (z zerologLogger) Error(args ...any) { z.l.Error().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }

func (z zerologLogger) Errorln(args ...any) { z.l.Error().Msg(sprintln(args...)) }

// sprintln drops the trailing newline; zerolog terminates entries itself.
func sprintln(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
