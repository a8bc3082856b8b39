package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/inodb/rosalind/internal/uniprot"
)

// configName is the config file name in the home directory, without extension.
const configName = ".rosalind"

// CacheSettings configure the DuckDB answer cache.
type CacheSettings struct {
	// whether solved answers are looked up and stored
	Enabled bool `mapstructure:"enabled"`

	// path to the DuckDB database file
	Path string `mapstructure:"path"`
}

// UniProtSettings configure the UniProt client.
type UniProtSettings struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Settings is the root-level settings struct, a mix of ~/.rosalind.yaml
// and ROSALIND_* environment variables.
type Settings struct {
	Cache   CacheSettings   `mapstructure:"cache"`
	UniProt UniProtSettings `mapstructure:"uniprot"`

	// worker count for batch solving, 0 means one per CPU
	Workers int `mapstructure:"workers"`
}

// initConfig points viper at the config file and environment. A missing
// default config file is not an error.
func initConfig(cfgFile string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.path", filepath.Join(home, ".rosalind", "answers.duckdb"))
	viper.SetDefault("uniprot.base_url", uniprot.DefaultBaseURL)
	viper.SetDefault("uniprot.timeout", uniprot.DefaultTimeout)
	viper.SetDefault("workers", 0)

	viper.SetEnvPrefix("ROSALIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// loadSettings decodes the current viper state.
func loadSettings() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}
