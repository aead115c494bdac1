package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	WorkDir    string          `yaml:"work_dir,omitempty"` // Default working directory for invocations
	UsePTY     bool            `yaml:"use_pty,omitempty"`  // Run interactive commands behind a PTY by default
	Hosts      map[string]Host `yaml:"hosts,omitempty"`    // Named SSH host profiles
	configPath string          // Path to config file
}

// Host is a named SSH target profile
type Host struct {
	User string `yaml:"user"`
	Addr string `yaml:"addr"`
	Key  string `yaml:"key"`           // Private key path
	Dir  string `yaml:"dir,omitempty"` // Remote working directory (default ~)
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".runx/config.yaml"
	}
	return filepath.Join(home, ".runx", "config.yaml")
}

// Load loads configuration from file, creating a default one if the
// file does not exist yet.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.configPath = path
		// Best effort; a read-only location still yields a usable config
		if saveErr := cfg.Save(); saveErr != nil {
			return cfg, nil
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.configPath = path
	cfg.expandEnvVars()

	return &cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = DefaultConfigPath()
	}

	dir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Key paths may point at private material; owner-only permissions
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetHost returns a named host profile
func (c *Config) GetHost(name string) (*Host, error) {
	host, ok := c.Hosts[name]
	if !ok {
		return nil, fmt.Errorf("host '%s' not found", name)
	}
	return &host, nil
}

// AddHost adds or updates a host profile
func (c *Config) AddHost(name string, host Host) {
	if c.Hosts == nil {
		c.Hosts = make(map[string]Host)
	}
	c.Hosts[name] = host
}

// RemoveHost removes a host profile
func (c *Config) RemoveHost(name string) error {
	if _, ok := c.Hosts[name]; !ok {
		return fmt.Errorf("host '%s' not found", name)
	}
	delete(c.Hosts, name)
	return nil
}

// ListHosts returns the configured host profile names
func (c *Config) ListHosts() []string {
	hosts := make([]string, 0, len(c.Hosts))
	for name := range c.Hosts {
		hosts = append(hosts, name)
	}
	return hosts
}

// expandEnvVars expands environment variables in config values
func (c *Config) expandEnvVars() {
	c.WorkDir = os.ExpandEnv(c.WorkDir)
	for name, host := range c.Hosts {
		host.User = os.ExpandEnv(host.User)
		host.Addr = os.ExpandEnv(host.Addr)
		host.Key = os.ExpandEnv(host.Key)
		host.Dir = os.ExpandEnv(host.Dir)
		c.Hosts[name] = host
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		UsePTY: false,
		Hosts:  map[string]Host{},
	}
}
