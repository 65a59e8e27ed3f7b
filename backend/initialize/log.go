package initialize

import (
	"io"
	"os"
	"strings"
	"time"

	"recipe-book/backend/config"
	"recipe-book/backend/global"

	"github.com/rs/zerolog"
)

// SetupLogger points global.Logger at stdout, as console lines or JSON.
func SetupLogger(cfg config.Log) {
	var out io.Writer = os.Stdout
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	global.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
}

// applyLogLevel is the config reload hook; only the level is hot.
func applyLogLevel(cfg *config.Config) {
	lvl := parseLevel(cfg.Log.Level)
	if lvl == zerolog.GlobalLevel() {
		return
	}
	zerolog.SetGlobalLevel(lvl)
	global.Logger.Info().Str("level", lvl.String()).Msg("log level changed")
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
