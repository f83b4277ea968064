package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadOptions
const (
	EnvConfigPath = "JUMPER_CONFIG"
	EnvSpectate   = "JUMPER_SPECTATE"
	EnvDebug      = "JUMPER_DEBUG"
)

// Options are process launch settings, separate from simulation tunables
type Options struct {
	// ConfigPath is an optional TOML tunables file
	ConfigPath string
	// SpectateAddr enables the spectator server when non-empty
	SpectateAddr string
	// Debug enables file logging
	Debug bool
}

// LoadOptions loads .env files into the environment and reads launch options
// With no files given, ./.env is tried; missing files are skipped
// Variables already set in the environment win over file values
func LoadOptions(files ...string) Options {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Skipping env file %s: %v", f, err)
		}
	}

	opts := Options{
		ConfigPath:   os.Getenv(EnvConfigPath),
		SpectateAddr: os.Getenv(EnvSpectate),
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvDebug, v, err)
		}
		opts.Debug = debug
	}
	return opts
}
