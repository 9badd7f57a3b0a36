package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/defaultctl/build"
)

// runConfig routes the driver's own defaults through the capability, so
// the CLI exercises the same resolution path it demonstrates.
type runConfig struct {
	App      string
	LogLevel string
	Repeat   int
}

func (runConfig) Build() runConfig {
	return runConfig{
		App:      "defaultctl",
		LogLevel: "info",
		Repeat:   1,
	}
}

type fileConfig struct {
	App      string `toml:"app"`
	LogLevel string `toml:"log_level"`
	Repeat   int    `toml:"repeat"`
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := build.Produce[runConfig]()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load run config: %w", err)
	}

	if meta.IsDefined("app") {
		app := strings.TrimSpace(raw.App)
		if app != "" {
			cfg.App = app
		}
	}

	if meta.IsDefined("log_level") {
		level := strings.TrimSpace(raw.LogLevel)
		if level != "" {
			cfg.LogLevel = level
		}
	}

	if meta.IsDefined("repeat") {
		if raw.Repeat < 1 {
			return runConfig{}, fmt.Errorf("repeat must be positive, got %d", raw.Repeat)
		}
		cfg.Repeat = raw.Repeat
	}

	return cfg, nil
}
