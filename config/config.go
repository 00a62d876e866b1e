// Package config provides configuration for the lhevec server daemon.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all daemon configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Publish PublishConfig `mapstructure:"publish"`
	Convert ConvertConfig `mapstructure:"convert"`
}

// ServerConfig configures the TCP parse service.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// PublishConfig configures the ZeroMQ result publisher.
type PublishConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// ConvertConfig configures batch conversion.
type ConvertConfig struct {
	Workers int    `mapstructure:"workers"`
	OutDir  string `mapstructure:"out_dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen", ":7612")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.listen", ":9612")
	v.SetDefault("publish.enabled", false)
	v.SetDefault("publish.addr", "tcp://127.0.0.1:5612")
	v.SetDefault("convert.workers", 4)
	v.SetDefault("convert.out_dir", ".")
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshal over defaults cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load reads configuration from an optional YAML file and LHEVEC_*
// environment variables, layered over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LHEVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
