package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return fmt.Errorf("config not loaded")
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	m.viper.SetConfigFile(configPath)

	m.viper.SetEnvPrefix("ZEROCLICK")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
}

func (m *manager) validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Dataset.File == "" {
		return fmt.Errorf("dataset file cannot be empty")
	}

	if len(config.Dataset.DefaultOrder) == 0 {
		return fmt.Errorf("dataset default_order cannot be empty")
	}
	for _, tag := range config.Dataset.DefaultOrder {
		switch tag {
		case "local", "uploaded", "remote":
		default:
			return fmt.Errorf("unknown provider in default_order: %s", tag)
		}
	}

	if config.Trends.TimeoutSeconds < 0 {
		return fmt.Errorf("trends timeout_seconds cannot be negative")
	}

	return nil
}
