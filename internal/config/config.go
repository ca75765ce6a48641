package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	Advisory AdvisoryConfig `yaml:"advisory"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig configures the optional MySQL write-through for the order
// ledger. When Enabled is false the ledger lives only in memory.
type DatabaseConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type StoreConfig struct {
	Code        string `yaml:"code"`
	CatalogPath string `yaml:"catalogPath"`
}

type AdvisoryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	APIKey      string        `yaml:"apiKey"`
	Model       string        `yaml:"model"`
	Endpoint    string        `yaml:"endpoint"`
	APIVersion  string        `yaml:"apiVersion"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "boutique")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "boutique")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_CODE", "VV")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("ADVISORY_ENABLED", false)
	viper.SetDefault("API_KEY", "")
	viper.SetDefault("ADVISORY_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("ADVISORY_ENDPOINT", "https://generativelanguage.googleapis.com/")
	viper.SetDefault("ADVISORY_API_VERSION", "v1beta")
	viper.SetDefault("ADVISORY_TEMPERATURE", 0.7)
	viper.SetDefault("ADVISORY_TIMEOUT", "15s")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	advisoryTimeout, err := time.ParseDuration(viper.GetString("ADVISORY_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Enabled:         viper.GetBool("DB_ENABLED"),
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Code:        viper.GetString("STORE_CODE"),
			CatalogPath: viper.GetString("CATALOG_PATH"),
		},
		Advisory: AdvisoryConfig{
			Enabled:     viper.GetBool("ADVISORY_ENABLED"),
			APIKey:      viper.GetString("API_KEY"),
			Model:       viper.GetString("ADVISORY_MODEL"),
			Endpoint:    viper.GetString("ADVISORY_ENDPOINT"),
			APIVersion:  viper.GetString("ADVISORY_API_VERSION"),
			Temperature: viper.GetFloat64("ADVISORY_TEMPERATURE"),
			Timeout:     advisoryTimeout,
		},
	}

	return cfg, nil
}
