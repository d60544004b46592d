// Package config handles configuration loading for RIT clients.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), then overlaid with RIT_*
// environment variables. This allows the certificate passphrase to be
// injected at runtime instead of being written to disk.
//
// # Example Configuration
//
//	channel: "12345"
//	secret: ${RIT_SECRET}
//	certificate: /etc/rit/client.pem
//	environment: test
//	language: pl-PL
//
//	environments:
//	  staging: https://staging.example.com/rit/integration/
//
//	transport:
//	  timeout: 15m
//	  capture: false
//	  rootCAFile: /etc/rit/ca.pem
//
// The production and test environments are always known; entries under
// environments add to or override them.
//
// See [Load] for loading configuration from a file and [FromEnv] for
// environment-only setups.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-rit/pkg/rit"
)

// EnvPrefix prefixes every environment variable read by the overlay
const EnvPrefix = "RIT_"

// Config is the root configuration structure
type Config struct {
	// Channel is the distribution channel id issued by the catalog operator
	Channel string `yaml:"channel" env:"CHANNEL"`
	// Secret is the passphrase of the certificate's private key
	Secret      string `yaml:"secret" env:"SECRET"`
	Certificate string `yaml:"certificate" env:"CERTIFICATE"`
	Environment string `yaml:"environment" env:"ENVIRONMENT"`

	Environments map[string]string `yaml:"environments" env:"ENVIRONMENTS" envKeyValSeparator:"="`

	Namespace string `yaml:"namespace" env:"NAMESPACE"`
	Language  string `yaml:"language" env:"LANGUAGE"`

	Transport TransportConfig `yaml:"transport" envPrefix:"TRANSPORT_"`
}

// TransportConfig holds HTTPS settings
type TransportConfig struct {
	Timeout            time.Duration `yaml:"timeout" env:"TIMEOUT"`
	DisableCompression bool          `yaml:"disableCompression" env:"DISABLE_COMPRESSION"`
	Capture            bool          `yaml:"capture" env:"CAPTURE"`
	InsecureSkipVerify bool          `yaml:"insecureSkipVerify" env:"INSECURE_SKIP_VERIFY"`
	RootCAFile         string        `yaml:"rootCAFile" env:"ROOT_CA_FILE"`
}

// Override adjusts the configuration after the file and environment are
// read, before defaults and validation. Command line flags use it.
type Override func(*Config)

// Load reads configuration from a YAML file and applies RIT_* overrides
func Load(path string, overrides ...Override) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return finish(&cfg, overrides)
}

// FromEnv builds the configuration from RIT_* environment variables only
func FromEnv(overrides ...Override) (*Config, error) {
	return finish(&Config{}, overrides)
}

func finish(cfg *Config, overrides []Override) (*Config, error) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	for _, o := range overrides {
		o(cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = rit.EnvironmentProduction
	}
	if c.Language == "" {
		c.Language = rit.DefaultLanguage
	}
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = 900 * time.Second
	}

	merged := make(map[string]string, len(rit.DefaultEnvironments)+len(c.Environments))
	for name, url := range rit.DefaultEnvironments {
		merged[name] = url
	}
	for name, url := range c.Environments {
		merged[name] = url
	}
	c.Environments = merged
}

func (c *Config) validate() error {
	if c.Channel == "" {
		return fmt.Errorf("channel is required")
	}
	if c.Certificate == "" {
		return fmt.Errorf("certificate is required")
	}
	if _, ok := c.Environments[c.Environment]; !ok {
		return fmt.Errorf("environment %q is not defined", c.Environment)
	}
	if c.Transport.Timeout < 0 {
		return fmt.Errorf("transport.timeout must not be negative")
	}
	return nil
}

// ClientConfig converts the configuration into the client's settings
func (c *Config) ClientConfig() *rit.Config {
	return &rit.Config{
		Channel:            c.Channel,
		Secret:             c.Secret,
		Certificate:        c.Certificate,
		Environment:        c.Environment,
		Environments:       c.Environments,
		Namespace:          c.Namespace,
		Timeout:            c.Transport.Timeout,
		Compression:        !c.Transport.DisableCompression,
		Capture:            c.Transport.Capture,
		InsecureSkipVerify: c.Transport.InsecureSkipVerify,
		RootCAFile:         c.Transport.RootCAFile,
	}
}
