package rit

import (
	"os"
	"time"

	"github.com/juju/errors"
)

// ErrConfiguration is the kind of every error returned by New for invalid
// settings.
const ErrConfiguration = errors.ConstError("configuration error")

// Environment names known without configuration
const (
	EnvironmentProduction = "production"
	EnvironmentTest       = "test"
)

// DefaultLanguage is used when an operation is called without a language
const DefaultLanguage = "pl-PL"

// DefaultEnvironments maps environment names to service base URLs
var DefaultEnvironments = map[string]string{
	EnvironmentProduction: "https://intrit.poland.travel/rit/integration/",
	EnvironmentTest:       "https://intrittest.poland.travel/rit/integration/",
}

// Config holds the settings needed to construct a Client
type Config struct {
	// Channel is the distribution channel id. It is sent as both channel
	// and user name in every request.
	Channel string
	// Secret is the passphrase of the certificate's private key
	Secret string
	// Certificate is the path of the client certificate (PEM or PKCS#12)
	Certificate string

	Environment string
	// Environments overrides DefaultEnvironments when set
	Environments map[string]string

	Namespace string

	Timeout            time.Duration
	Compression        bool
	Capture            bool
	InsecureSkipVerify bool
	RootCAFile         string
}

// BaseURL returns the service URL of the configured environment
func (c *Config) BaseURL() (string, error) {
	envs := c.Environments
	if envs == nil {
		envs = DefaultEnvironments
	}
	name := c.Environment
	if name == "" {
		name = EnvironmentProduction
	}
	url, ok := envs[name]
	if !ok || url == "" {
		return "", configError("unknown environment %q", name)
	}
	return url, nil
}

func (c *Config) validate() error {
	if c.Channel == "" {
		return configError("empty distribution channel")
	}
	if c.Certificate == "" {
		return configError("no certificate file given")
	}
	info, err := os.Stat(c.Certificate)
	if err != nil {
		if os.IsNotExist(err) {
			return configError("certificate file %q not found", c.Certificate)
		}
		return errors.WithType(errors.Annotatef(err, "certificate file %q", c.Certificate), ErrConfiguration)
	}
	if info.IsDir() {
		return configError("certificate path %q is a directory", c.Certificate)
	}
	if c.Timeout < 0 {
		return configError("negative timeout %v", c.Timeout)
	}
	_, err = c.BaseURL()
	return err
}

func configError(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrConfiguration)
}
