// Package config loads showdown settings from an HCL file with
// SHOWDOWN_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"
)

// DefaultFile is the config file used when none is given
const DefaultFile = "showdown.hcl"

// EnvPrefix prefixes every environment override
const EnvPrefix = "showdown"

// Config represents the complete showdown configuration
type Config struct {
	Log    LogSettings
	Output OutputSettings
	Engine EngineSettings
	Server ServerSettings
}

// LogSettings controls the logger
type LogSettings struct {
	Level      string `hcl:"level,optional"`
	Format     string `hcl:"format,optional"`
	Timestamps bool   `hcl:"timestamps,optional"`
}

// OutputSettings controls CLI rendering
type OutputSettings struct {
	NoColor bool `hcl:"no_color,optional"`
	Dump    bool `hcl:"dump,optional"`
}

// EngineSettings controls hand selection
type EngineSettings struct {
	// Workers caps goroutines used for parallel selection, 0 means one per hand
	Workers int `hcl:"workers,optional"`
}

// ServerSettings contains ranking service settings
type ServerSettings struct {
	Addr        string `hcl:"addr,optional"`
	MaxHands    int    `hcl:"max_hands,optional"`
	PingSeconds int    `hcl:"ping_seconds,optional"`
}

// PingInterval returns the websocket keepalive period
func (s ServerSettings) PingInterval() time.Duration {
	return time.Duration(s.PingSeconds) * time.Second
}

// fileConfig mirrors Config with every block optional
type fileConfig struct {
	Log    *LogSettings    `hcl:"log,block"`
	Output *OutputSettings `hcl:"output,block"`
	Engine *EngineSettings `hcl:"engine,block"`
	Server *ServerSettings `hcl:"server,block"`
}

// envOverrides are read by envconfig, e.g. SHOWDOWN_LOG_LEVEL
type envOverrides struct {
	LogLevel  string `split_words:"true"`
	LogFormat string `split_words:"true"`
	NoColor   *bool  `split_words:"true"`
	Workers   *int
	Addr      string
	MaxHands  *int `split_words:"true"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Engine: EngineSettings{
			Workers: 0,
		},
		Server: ServerSettings{
			Addr:        ":8080",
			MaxHands:    64,
			PingSeconds: 54,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist, then applies environment overrides.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes HCL source on top of the defaults. Environment overrides
// are not applied.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	cfg.merge(&fc)
	return cfg, nil
}

// merge copies every non-zero value from the file over the defaults
func (c *Config) merge(fc *fileConfig) {
	if l := fc.Log; l != nil {
		if l.Level != "" {
			c.Log.Level = l.Level
		}
		if l.Format != "" {
			c.Log.Format = l.Format
		}
		c.Log.Timestamps = l.Timestamps
	}

	if o := fc.Output; o != nil {
		c.Output = *o
	}

	if e := fc.Engine; e != nil {
		c.Engine.Workers = e.Workers
	}

	if s := fc.Server; s != nil {
		if s.Addr != "" {
			c.Server.Addr = s.Addr
		}
		if s.MaxHands != 0 {
			c.Server.MaxHands = s.MaxHands
		}
		if s.PingSeconds != 0 {
			c.Server.PingSeconds = s.PingSeconds
		}
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}

	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Log.Format = env.LogFormat
	}
	if env.NoColor != nil {
		c.Output.NoColor = *env.NoColor
	}
	if env.Workers != nil {
		c.Engine.Workers = *env.Workers
	}
	if env.Addr != "" {
		c.Server.Addr = env.Addr
	}
	if env.MaxHands != nil {
		c.Server.MaxHands = *env.MaxHands
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var logFormatters = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if _, ok := logFormatters[c.Log.Format]; !ok {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Server.MaxHands <= 0 {
		return fmt.Errorf("max hands must be positive")
	}
	if c.Server.PingSeconds <= 0 {
		return fmt.Errorf("ping interval must be positive")
	}
	return nil
}

// NewLogger builds a logger writing to w. The config should be validated
// first; unknown levels fall back to info.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter, ok := logFormatters[c.Log.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: c.Log.Timestamps,
	})
}
