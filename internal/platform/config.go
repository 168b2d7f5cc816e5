package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// SystemDir marks the project root and holds the configuration.
	SystemDir = ".adr"
	// ConfigFile is the configuration file name inside SystemDir.
	ConfigFile = "config.yaml"
	// DefaultDocsDir is where records live unless configured otherwise.
	DefaultDocsDir = "doc/adr"
)

// Config is the project configuration stored in .adr/config.yaml.
type Config struct {
	DocsDir    string `yaml:"docs_dir"`
	Template   string `yaml:"template,omitempty"`
	Versioning bool   `yaml:"versioning"`
}

// DefaultConfig returns the configuration used when none is stored.
func DefaultConfig() Config {
	return Config{DocsDir: DefaultDocsDir}
}

// ConfigPath returns the location of the configuration file under root.
func ConfigPath(root string) string {
	return filepath.Join(root, SystemDir, ConfigFile)
}

// LoadConfig reads the configuration of the project at root.
// A missing file is not an error; defaults are returned.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath(root))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", ConfigPath(root), err)
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	return cfg, nil
}

// SaveConfig writes cfg to root/.adr/config.yaml, creating the directory.
func SaveConfig(root string, cfg Config) error {
	if err := os.MkdirAll(filepath.Join(root, SystemDir), 0755); err != nil {
		return fmt.Errorf("create %s: %w", SystemDir, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(ConfigPath(root), data, 0644)
}
