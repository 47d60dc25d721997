package config

import (
	"ctchen222/Tic-Tac-Toe-Term/internal/bot"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "tictactoe.log", cfg.LogFile)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "hard", cfg.Bot.Difficulty)
	assert.Equal(t, 400*time.Millisecond, cfg.Bot.ThinkDelay)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, "tic-tac-toe-term", cfg.Telemetry.ServiceName)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log-level: debug
seed: 42
bot:
  difficulty: medium
  think-delay: 50ms
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  stdout-traces: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "medium", cfg.Bot.Difficulty)
	assert.Equal(t, 50*time.Millisecond, cfg.Bot.ThinkDelay)
	assert.Equal(t, bot.DefaultFumble(bot.Medium), cfg.Bot.Fumble())
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.StdoutTraces)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "bot:\n  difficulty: medium\n")
	t.Setenv("TTT_BOT_DIFFICULTY", "easy")
	t.Setenv("TTT_BOT_MISS_CHANCE", "0.5")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "easy", cfg.Bot.Difficulty)
	assert.Equal(t, bot.Fumble{MissChance: 0.5}, cfg.Bot.Fumble())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown difficulty", body: "bot:\n  difficulty: impossible\n"},
		{name: "chance above one", body: "bot:\n  miss-chance: 1.5\n"},
		{name: "negative chance", body: "bot:\n  center-skip-chance: -0.1\n"},
		{name: "unknown log level", body: "log-level: loud\n"},
		{name: "bad endpoint", body: "telemetry:\n  enabled: true\n  endpoint: nowhere\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestMustLoad_Panics(t *testing.T) {
	path := writeConfig(t, "log-level: loud\n")
	assert.Panics(t, func() { MustLoad(path) })
}

func TestConfig_Level(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.Level(), in)
	}
}
