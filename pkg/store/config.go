package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultKey is the name of the record holding the whole journal.
	DefaultKey  = "journalEntries"
	defaultPath = "~/.travlog.db"
)

type Config interface {
	BasePath() string
	Key() string
}

// LoadConfig reads .travlog from $TRAVLOG_CONFIG_PATH, the working directory
// or $HOME, then applies TRAVLOG_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("log-level", "warn")
	viper.SetDefault("tab", "memory")
	viper.SetConfigName(".travlog") // .yaml is implicit
	viper.SetEnvPrefix("TRAVLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("TRAVLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	key := viper.GetString("key")
	if key == "" {
		key = DefaultKey
	}
	return &fileConfig{Path: path, Record: key}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path, key string) Config {
	if key == "" {
		key = DefaultKey
	}
	return &fileConfig{Path: path, Record: key}
}

type fileConfig struct {
	Path   string `json:"path"`
	Record string `json:"key"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	return f.Record
}
