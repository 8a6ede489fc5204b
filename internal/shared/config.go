package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Sources SourcesConfig `toml:"sources"`
	Output  OutputConfig  `toml:"output"`
	Groups  GroupsConfig  `toml:"groups"`
}

// SourcesConfig contains the input file paths, one per source format.
type SourcesConfig struct {
	Playlist string `toml:"playlist"`
	Channels string `toml:"channels"`
}

// OutputConfig contains the destination path and the EPG guide URL embedded
// in the playlist header.
type OutputConfig struct {
	Path     string `toml:"path"`
	GuideURL string `toml:"guide_url"`
}

// GroupsConfig contains the group priority order: groups listed here are
// emitted first, in this order, ahead of every other group found in the
// sources.
type GroupsConfig struct {
	Order []string `toml:"order"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
