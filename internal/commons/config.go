package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"senthur/internal/config"
)

// LoadConfig reads a YAML file over the built-in defaults. Keys absent from
// the file keep their default value.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := config.Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}
