package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the journal lives on disk.
type Config interface {
	BasePath() (string, error)
}

// LoadConfig reads an optional .ilm config file, falling back to the
// default data directory under the user's home.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.ilm.db")
	viper.SetConfigName(".ilm") // .yaml is implicit
	viper.SetEnvPrefix("ILM")
	viper.AutomaticEnv()

	if override := os.Getenv("ILM_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() (string, error) {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return "", fmt.Errorf("store: expand path %q: %w", f.Path, err)
	}
	return expanded, nil
}

// FixedConfig pins the base path, for tests and one-off tools.
type FixedConfig string

func (f FixedConfig) BasePath() (string, error) {
	return string(f), nil
}
