// Package config holds the settings of the aligndump command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

// EnvPrefix prefixes the environment variables that override file settings.
const EnvPrefix = "ALIGNDUMP_"

type Config struct {
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
	// Format is one of text, json, geojson.
	Format string `toml:"format"`
	// SortByStation orders curves by start station in the output instead
	// of the snapshot's entity order.
	SortByStation bool `toml:"sort_by_station"`
	// RawStations skips station correction and uses the stations recorded
	// with each sample as they are.
	RawStations bool `toml:"raw_stations"`
}

// Default returns the settings used when neither a file nor the
// environment say otherwise.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Format:   FormatText,
	}
}

// Load reads the TOML file at path on top of the defaults, then applies
// overrides from the environment and from a .env file in the working
// directory, if there is one. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(os.ExpandEnv(path), cfg); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Variables already set in the environment win over the .env file.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Format = strings.ToLower(getEnv("FORMAT", c.Format))
	c.SortByStation = getEnvAsBool("SORT_BY_STATION", c.SortByStation)
	c.RawStations = getEnvAsBool("RAW_STATIONS", c.RawStations)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valStr := os.Getenv(EnvPrefix + key)
	if valStr == "" {
		return fallback
	}
	val, err := cast.ToBoolE(valStr)
	if err != nil {
		logrus.WithField("variable", EnvPrefix+key).Warnf("invalid bool %q, keeping %v", valStr, fallback)
		return fallback
	}
	return val
}

// Validate checks that the format and log level are known.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatGeoJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
