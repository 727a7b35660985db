package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kiimicoum5/Astrale/internal/impact"
)

const (
	DefaultFPS           = 60
	DefaultTimeScale     = 1.0
	DefaultTraceSegments = 96
	DefaultTheme         = "nebula"
	DefaultLiveMinutes   = 5
)

type Config struct {
	Theme         string        `yaml:"theme"`
	FPS           int           `yaml:"fps"`
	TimeScale     float64       `yaml:"time_scale"`
	TraceSegments int           `yaml:"trace_segments"`
	CatalogPath   string        `yaml:"catalog"`
	Scenario      impact.Params `yaml:"scenario"`
	Live          LiveConfig    `yaml:"live"`
}

type LiveConfig struct {
	Enabled         bool   `yaml:"enabled"`
	URL             string `yaml:"url"`
	IntervalMinutes int    `yaml:"interval_minutes"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:         DefaultTheme,
		FPS:           DefaultFPS,
		TimeScale:     DefaultTimeScale,
		TraceSegments: DefaultTraceSegments,
		Scenario:      impact.DefaultParams(),
		Live: LiveConfig{
			IntervalMinutes: DefaultLiveMinutes,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval returns the live-feed poll cadence, falling back to the
// default when the config leaves it unset.
func (c *Config) Interval() time.Duration {
	if c.Live.IntervalMinutes <= 0 {
		return DefaultLiveMinutes * time.Minute
	}
	return time.Duration(c.Live.IntervalMinutes) * time.Minute
}
