package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides, applied after the YAML file
const (
	EnvValue  = "STAR_RATING_VALUE"
	EnvNotify = "STAR_RATING_DRAG_NOTIFY"
	EnvDebug  = "STAR_RATING_DEBUG"
	EnvLogDir = "STAR_RATING_LOG_DIR"
	EnvAudio  = "STAR_RATING_AUDIO"
	EnvVolume = "STAR_RATING_VOLUME"
)

// ApplyEnv loads optional .env files, then overrides fields from STAR_RATING_* variables
// Missing env files are ignored; variables already set in the process win over file values
func (c *Config) ApplyEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := lookup(EnvValue); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvValue, v, err)
		}
		c.InitialValue = n
	}
	if v, ok := lookup(EnvNotify); ok {
		c.DragNotify = v
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvDebug, v, err)
		}
		c.Log.Debug = b
	}
	if v, ok := lookup(EnvLogDir); ok {
		c.Log.Dir = v
	}
	if v, ok := lookup(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAudio, v, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := lookup(EnvVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvVolume, v, err)
		}
		c.Audio.Volume = f
	}

	return c.Validate()
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
