package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	EnvDataFile = "CALI_DATA_FILE"
	EnvTimezone = "CALI_TIMEZONE"
	EnvColor    = "CALI_COLOR"
	EnvLogLevel = "CALI_LOG_LEVEL"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

type StorageConfig struct {
	DataFile string `toml:"data_file"`
	Compact  bool   `toml:"compact"`
}

type GeneralConfig struct {
	Timezone string `toml:"timezone"`
}

type DisplayConfig struct {
	Color ColorMode `toml:"color"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{DataFile: DefaultDataFile()},
		General: GeneralConfig{Timezone: "Local"},
		Display: DisplayConfig{Color: ColorAuto},
		Log:     LogConfig{Level: zerolog.WarnLevel.String()},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "cali", "config.toml")
}

func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("data", "cali_data.json")
	}
	return filepath.Join(home, ".cali", "data", "cali_data.json")
}

// Load builds the configuration from defaults, the TOML file at path (if it
// exists), a .env file in the working directory and CALI_* variables,
// each layer overriding the previous one.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, errors.Wrapf(ErrInvalidConfig, "decode %s: %s", path, err.Error())
			}
		} else if !os.IsNotExist(err) {
			return cfg, errors.Wrapf(err, "stat config %s", path)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	cfg.Storage.DataFile = ExpandHome(cfg.Storage.DataFile)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.Storage.DataFile = v
	}

	if v := os.Getenv(EnvTimezone); v != "" {
		c.General.Timezone = v
	}

	if v := os.Getenv(EnvColor); v != "" {
		c.Display.Color = ColorMode(strings.ToLower(v))
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Storage.DataFile) == "" {
		problems = append(problems, "storage.data_file must not be empty")
	}

	if _, err := time.LoadLocation(c.General.Timezone); err != nil {
		problems = append(problems, "unknown timezone "+c.General.Timezone)
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, "display.color must be one of auto, always, never, got "+string(c.Display.Color))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "unknown log level "+c.Log.Level)
	}

	if len(problems) > 0 {
		return errors.Wrap(ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Location resolves the timezone used to decide which day "today" is.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}

	return nil
}

func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
