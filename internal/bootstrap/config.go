package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Casebook      string `mapstructure:"CASEBOOK"`
	LeafPolicy    string `mapstructure:"LEAF_POLICY"`
	HashTableSize int    `mapstructure:"HASH_TABLE_SIZE"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogOutput     string `mapstructure:"LOG_OUTPUT"`
	PlainOutput   bool   `mapstructure:"PLAIN_OUTPUT"`
}

// Setup reads cfgPath (a .env file, optional), then the environment, on top
// of the defaults.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("CASEBOOK", "mansao")
	v.SetDefault("LEAF_POLICY", "explicit")
	v.SetDefault("HASH_TABLE_SIZE", 10)
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.SetDefault("PLAIN_OUTPUT", false)
}

func (c *Config) Validate() error {
	if c.Casebook == "" {
		return fmt.Errorf("CASEBOOK cannot be empty")
	}
	if c.LeafPolicy != "explicit" && c.LeafPolicy != "auto" {
		return fmt.Errorf("invalid LEAF_POLICY %q: want explicit or auto", c.LeafPolicy)
	}
	if c.HashTableSize <= 0 {
		return fmt.Errorf("invalid HASH_TABLE_SIZE: %d", c.HashTableSize)
	}
	return nil
}
