// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultHostURL is the backend endpoint used when none is configured.
	DefaultHostURL = "http://localhost:11434"
	// defaultRequestTimeout is the default timeout for HTTP requests.
	defaultRequestTimeout = 600 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	Host       Host     `json:"host"`
	Verbose    bool     `json:"verbose"`
	Debug      bool     `json:"debug"`
	Timeout    int      `json:"timeout,omitempty"`
	LogFile    string   `json:"logFile,omitempty"`
	Models     []string `json:"models,omitempty"`
	Prompts    []string `json:"prompts,omitempty"`
	ConfigPath string   `json:"-"`
}

// Host identifies the inference backend a benchmark session talks to.
type Host struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RequestTimeout returns the timeout duration for HTTP requests, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.Timeout) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "ollamabench.log"
}

// ApplyDefaults fills in the backend host when the config omits it.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Host.URL) == "" {
		c.Host.URL = DefaultHostURL
	}
	if strings.TrimSpace(c.Host.Name) == "" {
		c.Host.Name = "local"
	}
	c.Host.URL = strings.TrimRight(c.Host.URL, "/")
}

// Load reads the application configuration from the specified path.
// A missing file is not an error: every setting has a usable default.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config.ApplyDefaults()
			return config, nil
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}

	config.ConfigPath = path
	config.ApplyDefaults()
	return config, nil
}
