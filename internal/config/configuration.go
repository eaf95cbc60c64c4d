package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigurationFile = "mscategory.yaml"

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	HealthConfig  HealthConfig  `yaml:"health"`
}

type RequestConfig struct {
	// SizeLimit is the maximum request body in megabytes.
	SizeLimit int `yaml:"size_limit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"path"`
}

type HealthConfig struct {
	Schedule string `yaml:"schedule"`
}

type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `yaml:"driver"`
	// Path is the sqlite database file, ignored for postgres.
	Path string `yaml:"path"`
}

// LoadConfiguration reads the yaml file at configurationFilePath. A missing
// file yields the defaults.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 4
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.HealthConfig.Schedule == "" {
		c.Server.HealthConfig.Schedule = "@every 1m"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "mscategory.db"
	}
}
