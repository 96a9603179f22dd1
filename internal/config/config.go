// Package config loads the stockmeta YAML configuration. Every value
// has a default, so the tool runs with no config file at all; the API
// key is always read from the environment, never from the file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/microstock-labs/stockmeta/internal/metadata"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Server  Server  `yaml:"server"`
	Gemini  Gemini  `yaml:"gemini"`
	Retry   Retry   `yaml:"retry"`
	Pacing  Pacing  `yaml:"pacing"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Gemini struct {
	APIKeyEnv    string `yaml:"api_key_env"`
	FastModel    string `yaml:"fast_model"`
	QualityModel string `yaml:"quality_model"`
}

type Retry struct {
	CapacityBaseDelay  Duration `yaml:"capacity_base_delay"`
	CapacityMultiplier int      `yaml:"capacity_multiplier"`
	CapacityMaxDelay   Duration `yaml:"capacity_max_delay"`
	CapacityMaxRetries int      `yaml:"capacity_max_retries"`

	NetworkBaseDelay  Duration `yaml:"network_base_delay"`
	NetworkMultiplier int      `yaml:"network_multiplier"`
	NetworkMaxDelay   Duration `yaml:"network_max_delay"`
	NetworkMaxRetries int      `yaml:"network_max_retries"`
}

type Pacing struct {
	BaseDelay      Duration `yaml:"base_delay"`
	ErrorBaseDelay Duration `yaml:"error_base_delay"`
	Step           Duration `yaml:"step"`
}

type Output struct {
	Dir string `yaml:"dir"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// Duration decodes "6s"-style YAML strings.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigDir returns the XDG config directory for stockmeta.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "stockmeta")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/stockmeta/config.yaml > ./stockmeta.yaml.
// An empty path with no error means no file was found and the
// embedded defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "stockmeta.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file, applying defaults for
// anything the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault resolves and loads the config, falling back to the
// embedded defaults when no file exists.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := ResolveConfigPath(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return parse(DefaultConfigYAML)
	}
	return Load(path)
}

func parse(data []byte) (*Config, error) {
	base := metadata.DefaultConfig()
	cfg := &Config{
		Server: Server{Port: 8888},
		Gemini: Gemini{
			APIKeyEnv:    "GEMINI_API_KEY",
			FastModel:    base.FastModel,
			QualityModel: base.QualityModel,
		},
		Retry: Retry{
			CapacityBaseDelay:  Duration(base.CapacityBaseDelay),
			CapacityMultiplier: base.CapacityMultiplier,
			CapacityMaxDelay:   Duration(base.CapacityMaxDelay),
			CapacityMaxRetries: base.CapacityMaxRetries,
			NetworkBaseDelay:   Duration(base.NetworkBaseDelay),
			NetworkMultiplier:  base.NetworkMultiplier,
			NetworkMaxDelay:    Duration(base.NetworkMaxDelay),
			NetworkMaxRetries:  base.NetworkMaxRetries,
		},
		Pacing: Pacing{
			BaseDelay:      Duration(base.PacingBase),
			ErrorBaseDelay: Duration(base.PacingErrorBase),
			Step:           Duration(base.PacingStep),
		},
		Output:  Output{Dir: "exports"},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// APIKey reads the Gemini key from the configured environment
// variable.
func (c *Config) APIKey() string {
	return os.Getenv(c.Gemini.APIKeyEnv)
}

// MetadataConfig maps the file values onto the generation service's
// knobs.
func (c *Config) MetadataConfig() metadata.Config {
	return metadata.Config{
		FastModel:    c.Gemini.FastModel,
		QualityModel: c.Gemini.QualityModel,

		CapacityBaseDelay:  time.Duration(c.Retry.CapacityBaseDelay),
		CapacityMultiplier: c.Retry.CapacityMultiplier,
		CapacityMaxDelay:   time.Duration(c.Retry.CapacityMaxDelay),
		CapacityMaxRetries: c.Retry.CapacityMaxRetries,

		NetworkBaseDelay:  time.Duration(c.Retry.NetworkBaseDelay),
		NetworkMultiplier: c.Retry.NetworkMultiplier,
		NetworkMaxDelay:   time.Duration(c.Retry.NetworkMaxDelay),
		NetworkMaxRetries: c.Retry.NetworkMaxRetries,

		PacingBase:      time.Duration(c.Pacing.BaseDelay),
		PacingErrorBase: time.Duration(c.Pacing.ErrorBaseDelay),
		PacingStep:      time.Duration(c.Pacing.Step),
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
