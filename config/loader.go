package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/deduu/Youtube-audio-transcription/validation"
)

// envPrefix namespaces environment variable overrides, e.g.
// YAT_WHISPER_MODEL=small overrides whisper.model.
const envPrefix = "YAT"

// defaultSearchPaths are tried in order when no config file is given.
var defaultSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
}

// Load reads configuration from the given YAML file (or the default
// search paths when empty), overlays .env and environment variables,
// applies defaults and validates the result.
func Load(configFile string) (*Config, error) {
	// .env is optional; environment wins over it either way.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		for _, path := range defaultSearchPaths {
			if _, err := os.Stat(path); err == nil {
				configFile = path
				break
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags and the
// logging section's own rules.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}
