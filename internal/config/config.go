package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config contains runtime configuration values.
type Config struct {
	WebhookURL     string        `koanf:"webhook_url" validate:"omitempty,url"`
	UserAgent      string        `koanf:"user_agent" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`
	ScheduleCron   string        `koanf:"schedule_cron"`
	LogFormat      string        `koanf:"log_format" validate:"oneof=console json"`
	LogLevel       string        `koanf:"log_level" validate:"oneof=debug info warn error"`
	DryRun         bool          `koanf:"-"`
}

// Options are command-line overrides. Zero values leave the loaded value alone.
type Options struct {
	ConfigPath     string
	WebhookURL     string
	UserAgent      string
	RequestTimeout time.Duration
	ScheduleCron   string
	LogFormat      string
	LogLevel       string
	DryRun         bool
}

// EnvPrefix namespaces environment overrides, e.g. ZENTRA_WEBHOOK_URL.
const EnvPrefix = "ZENTRA_"

const (
	defaultUserAgent = "Zentra-Server/1.0"
	defaultTimeout   = 10 * time.Second
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UserAgent:      defaultUserAgent,
		RequestTimeout: defaultTimeout,
		LogFormat:      defaultLogFormat,
		LogLevel:       defaultLogLevel,
	}
}

// Load builds a Config from defaults, an optional YAML file, ZENTRA_*
// environment variables and finally opts, in increasing precedence.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if opts.ConfigPath != "" {
		if err := k.Load(file.Provider(opts.ConfigPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", opts.ConfigPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.apply(opts)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints. A webhook URL is only optional in dry-run mode.
func (c *Config) Validate() error {
	if !c.DryRun && c.WebhookURL == "" {
		return errors.New("webhook_url is required (set ZENTRA_WEBHOOK_URL or --webhook-url)")
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) apply(opts Options) {
	if opts.WebhookURL != "" {
		c.WebhookURL = opts.WebhookURL
	}
	if opts.UserAgent != "" {
		c.UserAgent = opts.UserAgent
	}
	if opts.RequestTimeout != 0 {
		c.RequestTimeout = opts.RequestTimeout
	}
	if opts.ScheduleCron != "" {
		c.ScheduleCron = opts.ScheduleCron
	}
	if opts.LogFormat != "" {
		c.LogFormat = opts.LogFormat
	}
	if opts.LogLevel != "" {
		c.LogLevel = opts.LogLevel
	}
	c.DryRun = opts.DryRun
}

func envKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}
