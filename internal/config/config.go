package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/Garsondee/Parris-Island-Trials/internal/game"
)

// Config is the process configuration read from the environment. Command
// line flags in each binary override it.
type Config struct {
	LogLevel   string
	LogFormat  string
	LogFile    string // empty logs to stderr
	MaxCatches int
	Seed       int64
	SeedSet    bool // Seed was given; otherwise the run seeds from the OS
	Mute       bool
	Scale      float64 // window scale for the ebiten frontend
}

func Load() *Config {
	_, seedSet := lookupInt64("PIT_SEED")
	return &Config{
		LogLevel:   getEnv("PIT_LOG_LEVEL", "info"),
		LogFormat:  getEnv("PIT_LOG_FORMAT", "text"),
		LogFile:    getEnv("PIT_LOG_FILE", ""),
		MaxCatches: getEnvInt("PIT_MAX_CATCHES", 15),
		Seed:       getEnvInt64("PIT_SEED", 0),
		SeedSet:    seedSet,
		Mute:       getEnvBool("PIT_MUTE", false),
		Scale:      getEnvFloat("PIT_SCALE", 1),
	}
}

// Tuning returns the stock game balance with the configured overrides.
func (c *Config) Tuning() game.Tuning {
	t := game.DefaultTuning()
	if c.MaxCatches > 0 {
		t.MaxCatches = c.MaxCatches
	}
	return t
}

// SimOptions returns the game options the configuration implies.
func (c *Config) SimOptions() []game.Option {
	opts := []game.Option{game.WithTuning(c.Tuning())}
	if c.SeedSet || c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if i, ok := lookupInt64(key); ok {
		return i
	}
	return fallback
}

func lookupInt64(key string) (int64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(v, 10, 64)
	return i, err == nil
}

// MarkFlagsSet records which configuration flags were passed explicitly,
// so that -seed 0 means seed zero rather than "unset".
func (c *Config) MarkFlagsSet(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.SeedSet = true
		}
	})
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}
