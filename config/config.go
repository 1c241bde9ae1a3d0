package config

import (
	"github.com/jsphweid/chordeye/identify"
	"github.com/spf13/viper"
)

type Config struct {
	Listen   ListenConfig
	Serve    ServeConfig
	Identify IdentifyConfig
}

type ListenConfig struct {
	Port       string // substring of the input port name, empty = first port
	AnyChannel bool   // match note-offs by note number alone
	DebounceMS int    // collapses chord prints during strums
}

type ServeConfig struct {
	Addr string
}

type IdentifyConfig struct {
	MinScore float64
}

func Load() (*Config, error) {
	viper.SetConfigName("chordeye")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/chordeye")

	viper.SetEnvPrefix("chordeye")
	viper.AutomaticEnv()

	viper.SetDefault("listen.port", "")
	viper.SetDefault("listen.any_channel", false)
	viper.SetDefault("listen.debounce_ms", 30)
	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("identify.min_score", identify.DefaultMinScore)

	// Config file is optional.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Listen: ListenConfig{
			Port:       viper.GetString("listen.port"),
			AnyChannel: viper.GetBool("listen.any_channel"),
			DebounceMS: viper.GetInt("listen.debounce_ms"),
		},
		Serve: ServeConfig{
			Addr: viper.GetString("serve.addr"),
		},
		Identify: IdentifyConfig{
			MinScore: viper.GetFloat64("identify.min_score"),
		},
	}

	return cfg, nil
}
