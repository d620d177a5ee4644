package web

import (
	"encoding/json"
	"os"

	"github.com/usaddr-parse/internal/config"
)

// Config represents the web server configuration
type Config struct {
	Server ServerConfig `json:"server"`
	Model  ModelConfig  `json:"model"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port int    `json:"port"`
	Host string `json:"host"`
}

// ModelConfig points at the persisted sequence labeling model
type ModelConfig struct {
	Path string `json:"path"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration from environment variables with
// development defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: config.GetEnvInt("USADDR_PORT", 8080),
			Host: config.GetEnv("USADDR_HOST", "0.0.0.0"),
		},
		Model: ModelConfig{
			Path: config.GetEnv("USADDR_MODEL", "usaddr.model"),
		},
	}
}
