// Package config provides loading and parsing of signalprint.yaml
// configuration files. The configuration selects the hash algorithm for
// fingerprint computation and enables or disables individual signal groups.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/signalprint/sdk/fingerprint"
)

// Config represents a signalprint.yaml configuration file. A zero Config is
// valid and means: default hash algorithm, every signal group enabled.
// Configuration is consumed read-only; it is passed once at construction and
// never mutated afterwards.
type Config struct {
	// Hash selects the digest algorithm.
	Hash HashConfig `yaml:"hash,omitempty"`

	// Groups enables or disables individual signal groups.
	Groups GroupsConfig `yaml:"groups,omitempty"`
}

// HashConfig selects the digest algorithm for fingerprint computation.
type HashConfig struct {
	// Algorithm is one of "sha1", "sha256", "sha512". Empty means sha256.
	Algorithm string `yaml:"algorithm,omitempty"`
}

// GroupsConfig holds per-group enable flags. A nil flag means enabled, so a
// config file only has to mention the groups it turns off.
type GroupsConfig struct {
	App                 *bool `yaml:"app,omitempty"`
	Hardware            *bool `yaml:"hardware,omitempty"`
	OperatingSystem     *bool `yaml:"operating_system,omitempty"`
	Identifiers         *bool `yaml:"identifiers,omitempty"`
	Cellular            *bool `yaml:"cellular,omitempty"`
	LocalAuthentication *bool `yaml:"local_authentication,omitempty"`
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

// AppEnabled reports whether the App group is enabled.
func (g GroupsConfig) AppEnabled() bool { return enabled(g.App) }

// HardwareEnabled reports whether the Hardware group is enabled.
func (g GroupsConfig) HardwareEnabled() bool { return enabled(g.Hardware) }

// OperatingSystemEnabled reports whether the Operating System group is enabled.
func (g GroupsConfig) OperatingSystemEnabled() bool { return enabled(g.OperatingSystem) }

// IdentifiersEnabled reports whether the Identifiers group is enabled.
func (g GroupsConfig) IdentifiersEnabled() bool { return enabled(g.Identifiers) }

// CellularEnabled reports whether the Cellular Network group is enabled.
func (g GroupsConfig) CellularEnabled() bool { return enabled(g.Cellular) }

// LocalAuthenticationEnabled reports whether the Local Authentication group is enabled.
func (g GroupsConfig) LocalAuthenticationEnabled() bool { return enabled(g.LocalAuthentication) }

// Default returns the default configuration.
func Default() *Config {
	return &Config{Hash: HashConfig{Algorithm: fingerprint.DefaultAlgorithm}}
}

// Validate checks that the configuration is usable, currently meaning the
// hash algorithm resolves to a known hasher.
func (c *Config) Validate() error {
	if _, err := fingerprint.NewHasher(c.Hash.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Hasher resolves the configured hash algorithm.
func (c *Config) Hasher() (fingerprint.Hasher, error) {
	return fingerprint.NewHasher(c.Hash.Algorithm)
}

// Load reads and parses a signalprint.yaml file from the given path. If the
// path is a directory, it looks for signalprint.yaml or signalprint.yml in
// that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "signalprint.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "signalprint.yml")
			if _, err := os.Stat(ymlPath); err != nil {
				return nil, fmt.Errorf("no signalprint.yaml or signalprint.yml found in %s", path)
			}
			configPath = ymlPath
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
