// Package config loads benchmark and server settings.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables (a .env file is loaded first if present, without
// overriding variables that are already set). Command-line flags are applied
// last by the cmd/ tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"coordbench/pkg/bench"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COORDBENCH_"

// Config is the full configuration.
type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	OSM    OSMConfig    `yaml:"osm"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// BenchConfig controls a benchmark run.
type BenchConfig struct {
	N       int      `yaml:"n"`
	Systems []string `yaml:"systems"`
	Out     string   `yaml:"out"`
	Plot    bool     `yaml:"plot"`
	Workers int      `yaml:"workers"`
	Seed    uint64   `yaml:"seed"` // 0 picks a time-based seed
}

// OSMConfig selects real-world sample points for the spherical systems.
type OSMConfig struct {
	File  string `yaml:"file"`
	BBox  string `yaml:"bbox"` // minLat,minLng,maxLat,maxLng
	Limit int    `yaml:"limit"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port          int           `yaml:"port"`
	CORSOrigin    string        `yaml:"cors_origin"`
	MaxConcurrent int           `yaml:"max_concurrent"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Bench: BenchConfig{
			N:       50000,
			Systems: bench.Names(),
			Out:     "results/bench.csv",
			Workers: 1,
		},
		OSM: OSMConfig{Limit: 100_000},
		Log: LogConfig{Level: "info", Format: "console"},
		Server: ServerConfig{
			Port:          8080,
			MaxConcurrent: runtime.NumCPU() * 2,
			ReadTimeout:   5 * time.Second,
			WriteTimeout:  5 * time.Second,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. envFiles are .env files to load; a
// missing file is ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok || err != nil {
			return
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%s%s: %w", EnvPrefix, key, perr)
			return
		}
		*dst = n
	}

	integer("N", &c.Bench.N)
	integer("WORKERS", &c.Bench.Workers)
	integer("OSM_LIMIT", &c.OSM.Limit)
	integer("PORT", &c.Server.Port)
	integer("MAX_CONCURRENT", &c.Server.MaxConcurrent)
	str("OUT", &c.Bench.Out)
	str("OSM_FILE", &c.OSM.File)
	str("BBOX", &c.OSM.BBox)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("CORS_ORIGIN", &c.Server.CORSOrigin)

	if v, ok := os.LookupEnv(EnvPrefix + "SYSTEMS"); ok && err == nil {
		c.Bench.Systems = SplitList(v)
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PLOT"); ok && err == nil {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("%sPLOT: %w", EnvPrefix, perr)
		}
		c.Bench.Plot = b
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok && err == nil {
		s, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, perr)
		}
		c.Bench.Seed = s
	}
	return err
}

// SplitList splits a comma or whitespace separated list, dropping empties.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// Validate checks the benchmark settings.
func (c *Config) Validate() error {
	if c.Bench.N <= 0 {
		return fmt.Errorf("n must be positive, got %d", c.Bench.N)
	}
	if c.Bench.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Bench.Workers)
	}
	if len(c.Bench.Systems) == 0 {
		return errors.New("no systems selected")
	}
	for _, s := range c.Bench.Systems {
		if _, err := bench.Lookup(s); err != nil {
			return err
		}
	}
	if c.Bench.Out == "" {
		return errors.New("output path is empty")
	}
	return nil
}
