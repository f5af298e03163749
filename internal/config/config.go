// Package config loads the site's runtime settings from an optional YAML file
// overlaid with GREENAIRE_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/greenaire/site/internal/ui/carousel"
	"github.com/greenaire/site/internal/ui/forms"
	"github.com/greenaire/site/internal/ui/relay"
)

// EnvPrefix marks environment overrides. A double underscore separates key
// segments: GREENAIRE_RELAY__FALLBACK_EMAIL sets relay.fallback_email.
const EnvPrefix = "GREENAIRE_"

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "greenaire.yaml"

// ServerConfig configures the static shell server.
type ServerConfig struct {
	Listen          string        `yaml:"listen" koanf:"listen"`
	Assets          string        `yaml:"assets" koanf:"assets"`
	AllowedOrigins  []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// RelayConfig configures the contact form relay.
type RelayConfig struct {
	Endpoint      string        `yaml:"endpoint" koanf:"endpoint"`
	FallbackEmail string        `yaml:"fallback_email" koanf:"fallback_email"`
	Timeout       time.Duration `yaml:"timeout" koanf:"timeout"`
}

// CarouselConfig configures the category slider.
type CarouselConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval"`
}

// LogConfig configures the structured logger. An empty Dir logs to stdout only.
type LogConfig struct {
	Dir       string `yaml:"dir" koanf:"dir"`
	Level     string `yaml:"level" koanf:"level"`
	MaxSizeMB int    `yaml:"max_size_mb" koanf:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files" koanf:"max_files"`
}

// Config is the full runtime configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Relay    RelayConfig    `yaml:"relay" koanf:"relay"`
	Carousel CarouselConfig `yaml:"carousel" koanf:"carousel"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          "127.0.0.1:4173",
			Assets:          "web",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 5 * time.Second,
		},
		Relay: RelayConfig{
			Endpoint:      relay.DefaultEndpoint,
			FallbackEmail: forms.DefaultFallbackEmail,
			Timeout:       forms.DefaultTimeout,
		},
		Carousel: CarouselConfig{
			Interval: carousel.DefaultInterval,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
	}
}

// Load reads configuration from the YAML file at path, when it exists, then
// overlays environment overrides. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	k := koanf.New(".")
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// YAML encodes the configuration with durations in their string form, so the
// output can be fed back to Load.
func (c *Config) YAML() ([]byte, error) {
	doc := map[string]any{
		"server": map[string]any{
			"listen":           c.Server.Listen,
			"assets":           c.Server.Assets,
			"allowed_origins":  c.Server.AllowedOrigins,
			"shutdown_timeout": c.Server.ShutdownTimeout.String(),
		},
		"relay": map[string]any{
			"endpoint":       c.Relay.Endpoint,
			"fallback_email": c.Relay.FallbackEmail,
			"timeout":        c.Relay.Timeout.String(),
		},
		"carousel": map[string]any{
			"interval": c.Carousel.Interval.String(),
		},
		"log": map[string]any{
			"dir":         c.Log.Dir,
			"level":       c.Log.Level,
			"max_size_mb": c.Log.MaxSizeMB,
			"max_files":   c.Log.MaxFiles,
		},
	}
	data, err := yamlv3.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true, "fatal": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Listen) == "" {
		return fmt.Errorf("server.listen is required")
	}
	if strings.TrimSpace(c.Server.Assets) == "" {
		return fmt.Errorf("server.assets is required")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be non-negative")
	}

	endpoint, err := url.Parse(c.Relay.Endpoint)
	if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("relay.endpoint %q must be an absolute http(s) URL", c.Relay.Endpoint)
	}
	if !strings.Contains(c.Relay.FallbackEmail, "@") {
		return fmt.Errorf("relay.fallback_email %q is not an email address", c.Relay.FallbackEmail)
	}
	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("relay.timeout must be positive")
	}

	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("carousel.interval must be positive")
	}

	if !validLevels[strings.ToLower(strings.TrimSpace(c.Log.Level))] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error, fatal", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxFiles < 0 {
		return fmt.Errorf("log.max_size_mb and log.max_files must be non-negative")
	}
	return nil
}
