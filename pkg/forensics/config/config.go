// Package config loads the optional ini file that overrides flavor defaults.
package config

import (
	"fmt"

	"github.com/go-ini/ini"
	"github.com/sirupsen/logrus"
)

// Config is the application configuration.
type Config struct {
	Log    LogConfig    `ini:"log"`
	Oracle FlavorConfig `ini:"oracle"`
	SAP    FlavorConfig `ini:"sap"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `ini:"level"` // debug, info, warn, error
	JSON  bool   `ini:"json"`  // emit JSON lines instead of text
}

// FlavorConfig overrides the paths of one flavor. Empty values keep the defaults.
type FlavorConfig struct {
	SourceDir string `ini:"source_dir"` // directory holding the workbooks
	Database  string `ini:"database"`   // snapshot file
	Report    string `ini:"report"`     // PDF output file
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info"}}
}

// LoadConfig reads an ini file on top of the defaults.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	if err := ini.MapTo(cfg, filePath); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", filePath, err)
	}

	logrus.Debugf("Config loaded from: %s", filePath)
	return cfg, nil
}

// Flavor returns the section for a flavor name.
func (c *Config) Flavor(name string) FlavorConfig {
	switch name {
	case "oracle":
		return c.Oracle
	case "sap":
		return c.SAP
	}
	return FlavorConfig{}
}

// ApplyLogging configures a logger from the [log] section.
func (c *Config) ApplyLogging(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	log.SetLevel(level)
	if c.Log.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
