package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/debris-field/constant"
	"github.com/lixenwraith/debris-field/input"
)

// ErrInvalidField reports a configuration value outside its accepted range
var ErrInvalidField = errors.New("invalid configuration")

// Environment keys
const (
	EnvFieldWidth   = "DEBRIS_FIELD_WIDTH"
	EnvFieldHeight  = "DEBRIS_FIELD_HEIGHT"
	EnvFrameRate    = "DEBRIS_FPS"
	EnvSeed         = "DEBRIS_SEED"
	EnvAudioEnabled = "DEBRIS_AUDIO_ENABLED"
	EnvVolume       = "DEBRIS_MASTER_VOLUME" // 0-100
	EnvHoldMs       = "DEBRIS_HOLD_MS"
	EnvDebug        = "DEBRIS_DEBUG"
)

// Config is the resolved runtime configuration
type Config struct {
	FieldWidth   float64
	FieldHeight  float64
	FrameRate    int
	Seed         uint64 // 0 picks a time based seed
	AudioEnabled bool
	Volume       float64 // 0..1
	HoldWindow   time.Duration
	Debug        bool
	EnvFile      string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FieldWidth:   constant.FieldWidth,
		FieldHeight:  constant.FieldHeight,
		FrameRate:    constant.FrameRate,
		AudioEnabled: true,
		Volume:       0.5,
		HoldWindow:   input.DefaultHoldWindow,
		EnvFile:      ".env",
	}
}

// FrameInterval returns the time between frames
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Load resolves configuration from defaults, the .env file, the environment and
// command-line flags, each layer overriding the previous one
// getenv is usually os.Getenv; a missing .env file is not an error
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("debris-field", flag.ContinueOnError)
	envFile := fset.String("env", cfg.EnvFile, "path to .env file")
	debug := fset.Bool("debug", false, "write debug log to logs/")
	seed := fset.Uint64("seed", 0, "random seed (0 = time based)")
	fps := fset.Int("fps", cfg.FrameRate, "frames per second")
	volume := fset.Int("volume", int(cfg.Volume*100), "master volume 0-100")
	noAudio := fset.Bool("no-audio", false, "disable audio")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}
	cfg.EnvFile = *envFile

	dotenv, err := godotenv.Read(cfg.EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read %s: %w", cfg.EnvFile, err)
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		case "fps":
			cfg.FrameRate = *fps
		case "volume":
			cfg.Volume = float64(*volume) / 100
		case "no-audio":
			cfg.AudioEnabled = !*noAudio
		}
	})

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) string) error {
	var errs []error
	parse := func(key string, apply func(v string) error) {
		if v := lookup(key); v != "" {
			if err := apply(v); err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
			}
		}
	}

	parse(EnvFieldWidth, func(v string) (err error) {
		c.FieldWidth, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse(EnvFieldHeight, func(v string) (err error) {
		c.FieldHeight, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse(EnvFrameRate, func(v string) (err error) {
		c.FrameRate, err = strconv.Atoi(v)
		return err
	})
	parse(EnvSeed, func(v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	})
	parse(EnvAudioEnabled, func(v string) (err error) {
		c.AudioEnabled, err = strconv.ParseBool(v)
		return err
	})
	parse(EnvVolume, func(v string) error {
		n, err := strconv.Atoi(v)
		c.Volume = float64(n) / 100
		return err
	})
	parse(EnvHoldMs, func(v string) error {
		n, err := strconv.Atoi(v)
		c.HoldWindow = time.Duration(n) * time.Millisecond
		return err
	})
	parse(EnvDebug, func(v string) (err error) {
		c.Debug, err = strconv.ParseBool(v)
		return err
	})
	return errors.Join(errs...)
}

// Validate rejects configurations the simulation cannot run with
// A degenerate field would make spawn direction sampling spin forever
func (c Config) Validate() error {
	var errs []error
	if !(c.FieldWidth > 0) || math.IsInf(c.FieldWidth, 0) {
		errs = append(errs, fmt.Errorf("%w: field width %v", ErrInvalidField, c.FieldWidth))
	}
	if !(c.FieldHeight > 0) || math.IsInf(c.FieldHeight, 0) {
		errs = append(errs, fmt.Errorf("%w: field height %v", ErrInvalidField, c.FieldHeight))
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("%w: frame rate %d outside 1..240", ErrInvalidField, c.FrameRate))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("%w: volume %v outside 0..1", ErrInvalidField, c.Volume))
	}
	if c.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("%w: hold window %v", ErrInvalidField, c.HoldWindow))
	}
	return errors.Join(errs...)
}
