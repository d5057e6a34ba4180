package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderConfig is one configured provider section. Kind selects the
// API dialect; the section name is just an identifier.
type ProviderConfig struct {
	Kind    string    `yaml:"kind"`
	APIKey  string    `yaml:"api_key"`
	APIBase string    `yaml:"api_base"`
	Models  ModelList `yaml:"models"`
}

// ModelList accepts either a YAML sequence or a comma-separated scalar.
type ModelList []string

func (m *ModelList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*m = list
		return nil
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		var list []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}
		*m = list
		return nil
	default:
		return fmt.Errorf("models: expected list or comma-separated string")
	}
}

// Config maps provider section names to their settings.
type Config struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Load reads the provider config from path. A missing file is not an
// error: every provider is simply unconfigured. Sections without an
// api_key are dropped rather than failing later at request time.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{Providers: map[string]ProviderConfig{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]ProviderConfig{}
	}

	for name, p := range cfg.Providers {
		if p.APIKey == "" {
			delete(cfg.Providers, name)
			continue
		}
		if p.Kind == "" {
			// Section name doubles as the kind when none is given.
			p.Kind = name
			cfg.Providers[name] = p
		}
	}

	return &cfg, nil
}

// SectionNames returns the configured provider identifiers, sorted.
func (c *Config) SectionNames() []string {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provider returns the named section, or false if it isn't configured.
func (c *Config) Provider(name string) (ProviderConfig, bool) {
	p, ok := c.Providers[name]
	return p, ok
}

// DefaultPath resolves the config file path: READLEAF_CONFIG if set,
// else ~/.config/readleaf/providers.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("READLEAF_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "readleaf", "providers.yaml"), nil
}
