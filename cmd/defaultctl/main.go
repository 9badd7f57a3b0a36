package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/defaultctl/build"
	"github.com/danmuck/defaultctl/internal/observability"
)

func main() {
	observability.InitLogger("defaultctl")

	cfg := build.Produce[runConfig]()
	if len(os.Args) > 1 {
		loaded, err := loadRunConfig(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load run config")
		}
		cfg = loaded
	}
	if err := observability.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to apply log level")
	}

	for i := 0; i < cfg.Repeat; i++ {
		narrow := build.Produce[build.Uint32]()
		wide := build.Produce[build.Uint64]()
		log.Info().
			Str("app", cfg.App).
			Uint32("uint32", uint32(narrow)).
			Uint64("uint64", uint64(wide)).
			Msg("produced registered defaults")
	}
}
