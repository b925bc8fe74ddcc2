package cali

import (
	"github.com/rs/zerolog"
	"os"
)

// InMemory can be passed to Load instead of a file path
// to get a store that is never written to disk.
const InMemory = ":memory:"

const defaultFileMode os.FileMode = 0644
const defaultDirMode os.FileMode = 0755

type Config struct {
	Logger   *zerolog.Logger
	FileMode os.FileMode
	DirMode  os.FileMode
	Compact  bool
}

func (cfg *Config) applyDefaults() {
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}

	if cfg.FileMode == 0 {
		cfg.FileMode = defaultFileMode
	}

	if cfg.DirMode == 0 {
		cfg.DirMode = defaultDirMode
	}
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
