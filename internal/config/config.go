package config

import (
	"ctchen222/Tic-Tac-Toe-Term/internal/bot"
	"ctchen222/Tic-Tac-Toe-Term/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile   string    `yaml:"log-file" env:"TTT_LOG_FILE" env-default:"tictactoe.log" validate:"required"`
	Seed      uint64    `yaml:"seed" env:"TTT_SEED"`
	Bot       Bot       `yaml:"bot"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Bot configures the computer player. Zero chances fall back to the
// difficulty's defaults.
type Bot struct {
	Difficulty       string        `yaml:"difficulty" env:"TTT_BOT_DIFFICULTY" env-default:"hard" validate:"oneof=easy medium hard"`
	MissChance       float64       `yaml:"miss-chance" env:"TTT_BOT_MISS_CHANCE" validate:"probability"`
	CenterSkipChance float64       `yaml:"center-skip-chance" env:"TTT_BOT_CENTER_SKIP_CHANCE" validate:"probability"`
	ThinkDelay       time.Duration `yaml:"think-delay" env:"TTT_BOT_THINK_DELAY" env-default:"400ms" validate:"gte=0"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"enabled" env:"TTT_TELEMETRY_ENABLED"`
	Endpoint     string `yaml:"endpoint" env:"TTT_TELEMETRY_ENDPOINT" env-default:"localhost:4317" validate:"hostname_port"`
	ServiceName  string `yaml:"service-name" env:"TTT_TELEMETRY_SERVICE_NAME" env-default:"tic-tac-toe-term" validate:"required"`
	StdoutTraces bool   `yaml:"stdout-traces" env:"TTT_TELEMETRY_STDOUT_TRACES"`
}

// Load reads the YAML file at path when it exists, then the TTT_* environment
// variables, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" && fileExists(path) {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) Validate() error {
	if err := validator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Fumble returns the configured fumble chances, or the difficulty's defaults
// when none are set.
func (b Bot) Fumble() bot.Fumble {
	if b.MissChance == 0 && b.CenterSkipChance == 0 {
		return bot.DefaultFumble(bot.Difficulty(b.Difficulty))
	}
	return bot.Fumble{MissChance: b.MissChance, CenterSkipChance: b.CenterSkipChance}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
