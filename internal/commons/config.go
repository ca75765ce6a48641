package commons

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"boutique/internal/config"
)

// LoadConfig reads the YAML file at path. A missing file falls back to the
// environment defaults of config.Load. The advisory API key is never kept in
// the file and always comes from API_KEY.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	viper.AutomaticEnv()
	if key := viper.GetString("API_KEY"); key != "" {
		cfg.Advisory.APIKey = key
	}
	if cfg.Store.Code == "" {
		cfg.Store.Code = "VV"
	}

	return &cfg, nil
}
