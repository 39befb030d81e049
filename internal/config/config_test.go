package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerdemo/internal/util"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("POKERDEMO_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("POKERDEMO_LOG_LEVEL", "warn")()

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":6000", cfg.Addr)
	a.Equal([]string{"Alice", "Bob"}, cfg.Players)
	a.Equal(2, cfg.HoleCards)
	a.Equal(int64(7), cfg.Seed)
	a.Equal("warn", cfg.Log.Level)
	a.False(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://example.com"}, cfg.CORS.AllowedOrigins)

	// ensure that it's only loaded once
	defer util.SetEnv("POKERDEMO_LOG_LEVEL", "error")()
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestLoad_environment(t *testing.T) {
	defer util.SetEnv("POKERDEMO_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("POKERDEMO_PLAYERS", "Carol,Dan,Erin")()
	defer util.SetEnv("POKERDEMO_SEED", "99")()
	defer util.SetEnv("POKERDEMO_LOG_DISABLE_ACCESS_LOGS", "true")()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal([]string{"Carol", "Dan", "Erin"}, cfg.Players)
	a.Equal(int64(99), cfg.Seed)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal("debug", cfg.Log.Level)

	defer util.SetEnv("POKERDEMO_HOLE_CARDS", "two")()
	a.Error(Load())
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("POKERDEMO_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Addr, cfg.Addr)
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Len(t, cfg.Players, 4)
	assert.Equal(t, 2, cfg.HoleCards)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_badFile(t *testing.T) {
	defer util.SetEnv("POKERDEMO_CONFIG_FILE", "testdata/bad.yaml")()

	assert.Error(t, Load())
}

func TestLoad_emptyFile(t *testing.T) {
	defer util.SetEnv("POKERDEMO_CONFIG_FILE", "testdata/empty.yaml")()

	assert.NoError(t, Load())
	assert.Equal(t, DefaultConfig().Addr, Instance().Addr)
	assert.Equal(t, DefaultConfig().Log.Level, Instance().Log.Level)
}
