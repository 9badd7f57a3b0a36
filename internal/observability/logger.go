package observability

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// SetLevel applies a config-supplied level name to the global logger.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	// ParseLevel maps "" to NoLevel, which would suppress all leveled output.
	if lvl == zerolog.NoLevel {
		return fmt.Errorf("blank log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
