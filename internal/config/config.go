package config

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Dataset DatasetConfig `mapstructure:"dataset"`
	Trends  TrendsConfig  `mapstructure:"trends"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatasetConfig struct {
	// File is where the sample dataset is persisted at startup and read back.
	File string `mapstructure:"file"`
	// DefaultOrder is the provider order used when a request does not supply
	// one, e.g. ["remote", "local"].
	DefaultOrder []string `mapstructure:"default_order"`
}

type TrendsConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
