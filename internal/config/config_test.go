package config

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PIT_LOG_LEVEL", "PIT_LOG_FORMAT", "PIT_LOG_FILE", "PIT_MAX_CATCHES", "PIT_SEED", "PIT_MUTE", "PIT_SCALE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 15, cfg.MaxCatches)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.SeedSet)
	assert.False(t, cfg.Mute)
	assert.Equal(t, 1.0, cfg.Scale)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PIT_LOG_LEVEL", "debug")
	t.Setenv("PIT_LOG_FORMAT", "json")
	t.Setenv("PIT_MAX_CATCHES", "5")
	t.Setenv("PIT_SEED", "9007199254740993")
	t.Setenv("PIT_MUTE", "true")
	t.Setenv("PIT_SCALE", "1.5")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.MaxCatches)
	assert.Equal(t, int64(9007199254740993), cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.True(t, cfg.Mute)
	assert.Equal(t, 1.5, cfg.Scale)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("PIT_MAX_CATCHES", "lots")
	t.Setenv("PIT_SEED", "x")
	t.Setenv("PIT_MUTE", "maybe")
	t.Setenv("PIT_SCALE", "-2")

	cfg := Load()
	assert.Equal(t, 15, cfg.MaxCatches)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Mute)
	assert.Equal(t, 1.0, cfg.Scale)
}

func TestConfig_Tuning(t *testing.T) {
	cfg := &Config{MaxCatches: 3}
	assert.Equal(t, 3, cfg.Tuning().MaxCatches)

	cfg.MaxCatches = 0
	assert.Equal(t, 15, cfg.Tuning().MaxCatches, "non-positive keeps the default")
}

func TestConfig_SimOptions(t *testing.T) {
	assert.Len(t, (&Config{}).SimOptions(), 1)
	assert.Len(t, (&Config{Seed: 7}).SimOptions(), 2)
	assert.Len(t, (&Config{SeedSet: true}).SimOptions(), 2, "an explicit zero seed is kept")
}

func TestLoad_ZeroSeedFromEnv(t *testing.T) {
	t.Setenv("PIT_SEED", "0")
	cfg := Load()
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.Len(t, cfg.SimOptions(), 2)
}

func TestConfig_MarkFlagsSet(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want bool
	}{
		{"zero seed", []string{"-seed", "0"}, true},
		{"other flag only", []string{"-mute"}, false},
		{"no flags", nil, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Int64Var(&cfg.Seed, "seed", 0, "")
			fs.BoolVar(&cfg.Mute, "mute", false, "")
			require.NoError(t, fs.Parse(tc.args))

			cfg.MarkFlagsSet(fs)
			assert.Equal(t, tc.want, cfg.SeedSet)
			assert.Zero(t, cfg.Seed)
		})
	}
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("caught", "catches", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "caught", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 3, rec["catches"])
}

func TestNewLogger_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{LogLevel: "nonsense"}, &buf)
	l.Debug("hidden")
	l.Info("run started")
	assert.Contains(t, buf.String(), "msg=\"run started\"")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pit.log")
	l, closeFn, err := SetupLogger(&Config{LogFile: path}, &bytes.Buffer{})
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestSetupLogger_BadFile(t *testing.T) {
	_, _, err := SetupLogger(&Config{LogFile: filepath.Join(t.TempDir(), "missing", "pit.log")}, &bytes.Buffer{})
	require.Error(t, err)
}
