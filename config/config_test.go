package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "data_dir: /tmp/assistant\nbirthdays_days: 14\nstyle: dark\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/assistant", cfg.DataDir)
	assert.Equal(t, 14, cfg.BirthdaysDays)
	assert.Equal(t, "dark", cfg.Style)
	assert.Equal(t, "assistant.json", cfg.File, "keys absent from the file keep their default")
	assert.Equal(t, filepath.Join("/tmp/assistant", "assistant.json"), cfg.Path())
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("birthdays_days: 14\n"), 0644))
	t.Setenv("BOT_BIRTHDAYS_DAYS", "3")
	t.Setenv("BOT_LOG_LEVEL", "debug")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.BirthdaysDays)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"days", "birthdays_days: 0\n"},
		{"level", "log_level: loud\n"},
		{"style", "style: neon\n"},
		{"file", "file: \"\"\n"},
		{"yaml", "birthdays_days: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.content), 0644))
			_, err := load(dir)
			assert.Error(t, err)
		})
	}
}

func TestPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(home, ".bot", "assistant.json"), cfg.Path())

	cfg.File = "/var/lib/bot/book.json"
	assert.Equal(t, "/var/lib/bot/book.json", cfg.Path())

	cfg = &Config{DataDir: "data", File: "book.json"}
	assert.Equal(t, filepath.Join("data", "book.json"), cfg.Path())
}
