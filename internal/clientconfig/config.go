// Package clientconfig resolves where the rpm CLI keeps its data and which
// server it syncs with.
package clientconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	util "github.com/saulo-duarte/rpm-planner/internal/utils"
)

const (
	DefaultPath     = "~/.rpm.db"
	DefaultServer   = "http://localhost:8080"
	DefaultTimeZone = "Local"
)

type Config struct {
	Path     string `json:"path"`
	Server   string `json:"server"`
	TimeZone string `json:"timezone"`
}

// BasePath is the diskv directory holding the planner data.
func (c *Config) BasePath() string {
	return c.Path
}

// Location is the zone that decides where a calendar day starts.
func (c *Config) Location() *time.Location {
	return util.LoadLocation(c.TimeZone)
}

// Load reads .rpm.yaml from $RPM_CONFIG_PATH, the home directory or the
// working directory, in that order. RPM_PATH, RPM_SERVER and RPM_TIMEZONE
// override the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("server", DefaultServer)
	v.SetDefault("timezone", DefaultTimeZone)
	v.SetConfigName(".rpm")
	v.SetEnvPrefix("RPM")
	v.AutomaticEnv()

	if override := os.Getenv("RPM_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand data path: %w", err)
	}

	return &Config{
		Path:     path,
		Server:   v.GetString("server"),
		TimeZone: v.GetString("timezone"),
	}, nil
}
