// Package config resolves game settings from defaults, .env files, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/typefall/constants"
)

// EnvPrefix is prepended to every environment key
const EnvPrefix = "TYPEFALL_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Config holds the resolved settings
type Config struct {
	WordsPath string // empty selects the embedded list
	Debug     bool
	Mute      bool
	Volume    float64 // 0 to 1
	FPS       int
	Seed      uint64 // 0 seeds from the clock
	LogLevel  string
	LogDir    string
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Volume:   1,
		FPS:      constants.DefaultFPS,
		LogLevel: "info",
		LogDir:   "logs",
	}
}

// Load resolves settings with precedence flags > environment > env files > defaults
// Missing env files are skipped
func Load(args []string, envFiles ...string) (Config, error) {
	cfg := Default()

	fileEnv, err := readEnvFiles(envFiles)
	if err != nil {
		return cfg, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	cfg.FPS = max(constants.MinFPS, min(constants.MaxFPS, cfg.FPS))
	cfg.Volume = max(0, min(1, cfg.Volume))
	return cfg, nil
}

// TickInterval is the frame period for the configured FPS
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(max(1, c.FPS))
}

// Level returns the parsed log level, info when unparsable
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func readEnvFiles(files []string) (map[string]string, error) {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat env file %s: %w", f, err)
		}
		present = append(present, f)
	}
	if len(present) == 0 {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(present...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	return env, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "WORDS"); ok {
		c.WordsPath = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_DIR"); ok && v != "" {
		c.LogDir = v
	}

	for key, dst := range map[string]*bool{"DEBUG": &c.Debug, "MUTE": &c.Mute} {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = b
	}

	if v, ok := lookup(EnvPrefix + "FPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sFPS: %w", EnvPrefix, err)
		}
		c.FPS = n
	}
	if v, ok := lookup(EnvPrefix + "VOLUME"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME: %w", EnvPrefix, err)
		}
		c.Volume = f
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fset := flag.NewFlagSet("typefall", flag.ContinueOnError)
	fset.StringVar(&c.WordsPath, "words", c.WordsPath, "newline-delimited word list file (default: built-in list)")
	fset.BoolVar(&c.Debug, "debug", c.Debug, "write logs to the log directory")
	fset.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fset.Float64Var(&c.Volume, "volume", c.Volume, "sound volume (0-1)")
	fset.IntVar(&c.FPS, "fps", c.FPS, fmt.Sprintf("frame rate (%d-%d)", constants.MinFPS, constants.MaxFPS))
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	fset.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fset.StringVar(&c.LogDir, "log-dir", c.LogDir, "log directory")
	return fset.Parse(args)
}
