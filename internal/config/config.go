package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dictmark-dev/dictmark/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "dictmark.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 8480

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultMediaPrefix is the URL prefix illustration references are
	// rewritten under.
	DefaultMediaPrefix = "/media/"

	// DefaultMediaDir is the default media storage directory.
	DefaultMediaDir = "media"
)

// Config represents the complete dictmark.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Profile is the path to the default display profile JSON.
	Profile string `json:"profile,omitempty"`

	// Render contains renderer settings.
	Render RenderConfig `json:"render,omitempty"`

	// Media contains illustration asset settings.
	Media MediaConfig `json:"media,omitempty"`

	// Server contains preview server settings.
	Server ServerConfig `json:"server,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// DefaultLanguage is the inherited language filter at the root; empty or
	// "*" disables localized-form filtering.
	DefaultLanguage string `json:"defaultLanguage,omitempty"`
}

// MediaConfig contains illustration asset settings.
type MediaConfig struct {
	// Dir is the media storage directory.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for media files.
	Prefix string `json:"prefix,omitempty"`

	// Manifest is the path to a fingerprint manifest JSON, if any.
	Manifest string `json:"manifest,omitempty"`
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads dictmark.json from a directory, or returns defaults when the
// file does not exist.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a configuration file. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, errors.FromError(err, "D300")
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.FromError(err, "D300").
			WithSuggestion("check " + path + " for JSON syntax errors")
	}
	c.configPath = path
	c.applyDefaults()
	return &c, nil
}

// Save writes the configuration back to its source path.
func (c *Config) Save() error {
	path := c.configPath
	if path == "" {
		path = ConfigFileName
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to a path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.FromError(err, "D300")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.FromError(err, "D300")
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Address returns the host:port the preview server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Media.Dir == "" {
		c.Media.Dir = DefaultMediaDir
	}
	if c.Media.Prefix == "" {
		c.Media.Prefix = DefaultMediaPrefix
	}
}
