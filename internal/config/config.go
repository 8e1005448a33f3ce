package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "corpdir.toml"

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the corpdir configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig defines settings for the HTTP server.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig defines how to reach the database. For sqlite the DSN is
// a file path; for postgres it is a connection string.
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// Default returns a Config with default values: a local sqlite file and
// the default server port.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8680,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "corpdir.db",
		},
	}
}

// Load reads configuration from the given path. An empty path means
// ConfigFile in the working directory. Returns default config if the
// file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	def := Default()
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = def.Database.Driver
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.DSN = def.Database.DSN
	}

	return &cfg, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigFile
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
