package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"tricktaker/internal/util"
)

func TestInstance(t *testing.T) {
	config = Config{}
	clear1 := util.SetEnv("TT_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("TT_LOG_LEVEL", "warn")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("warn", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(int64(99), cfg.Seed)
	a.Equal("schedule.yaml", cfg.ScheduleFile)
	a.Equal(3, cfg.MaxPlayers)
	a.Equal([]string{"Alice", "Bob"}, cfg.Players)

	// ensure that it's only loaded once
	_ = os.Setenv("TT_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("TT_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()

	expected := DefaultConfig()
	expected.loaded = true
	assert.Equal(t, expected, cfg)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.MaxPlayers)
}

func TestLoad_environment(t *testing.T) {
	a := assert.New(t)

	defer util.SetEnv("TT_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("TT_SEED", "1234")()
	defer util.SetEnv("TT_PLAYERS", "Carol,Dan")()
	defer util.SetEnv("TT_MAX_PLAYERS", "2")()
	defer util.SetEnv("TT_SCHEDULE_FILE", "short.yaml")()

	a.NoError(Load())
	cfg := Instance()
	a.Equal(int64(1234), cfg.Seed)
	a.Equal([]string{"Carol", "Dan"}, cfg.Players)
	a.Equal(2, cfg.MaxPlayers)
	a.Equal("short.yaml", cfg.ScheduleFile)
}

func TestLoad_errors(t *testing.T) {
	a := assert.New(t)

	restore := util.SetEnv("TT_CONFIG_FILE", "testdata/bad_format.yaml")
	a.EqualError(Load(), `log format must be text or json, got "xml"`)
	restore()

	defer util.SetEnv("TT_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("TT_SEED", "not a number")()
	a.Error(Load())

	restore = util.SetEnv("TT_SEED", "0")
	defer restore()
	defer util.SetEnv("TT_MAX_PLAYERS", "1")()
	a.EqualError(Load(), "max players must be at least 2, got 1")
}
