package cli

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var setupOnce sync.Once

func setupZerolog() {
	setupOnce.Do(func() {
		zerolog.DisableSampling(true)
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.InterfaceMarshalFunc = json.Marshal
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.TimestampFunc = func() time.Time {
			return time.Now().UTC()
		}
	})
}

// buildLogger returns a logger writing to w with the given encoder
// ("console" or "json") and level name.
func buildLogger(w io.Writer, encoder, level string) (zerolog.Logger, error) {
	setupZerolog()

	if !strings.EqualFold(encoder, "json") {
		w = &zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339Nano,
			NoColor:    true,
			PartsOrder: []string{
				zerolog.LevelFieldName,
				zerolog.TimestampFieldName,
				zerolog.MessageFieldName,
			},
			PartsExclude: []string{
				zerolog.ErrorStackFieldName,
				zerolog.CallerFieldName,
			},
		}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid logger level")
	}

	return zerolog.New(w).With().Timestamp().Stack().Logger().Level(lvl), nil
}
