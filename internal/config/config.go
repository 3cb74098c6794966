package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database       DatabaseConfig       `mapstructure:"database"`
	Server         ServerConfig         `mapstructure:"server"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
}

type DatabaseConfig struct {
	// Driver is either "sqlite" or "mysql".
	Driver string `mapstructure:"driver" validate:"oneof=sqlite mysql"`

	// Path is the database file path, used by the sqlite driver only.
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"min=1,max=65535"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	TLS      bool   `mapstructure:"tls"`

	MaxOpenConns    int `mapstructure:"max_open_conns"`
	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime_seconds"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RecommendationConfig struct {
	// Limit is the default number of lessons returned by recommendations.
	Limit int `mapstructure:"limit" validate:"min=1"`

	// StatsWindowDays is the default window for daily study/accuracy stats.
	StatsWindowDays int `mapstructure:"stats_window_days" validate:"min=1"`
}

func Load(configFile string) (*Config, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/brevetcoach")
	}

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "brevetcoach.db")
	v.SetDefault("database.port", 3306)
	v.SetDefault("server.port", 8080)
	v.SetDefault("recommendation.limit", 3)
	v.SetDefault("recommendation.stats_window_days", 7)

	// The database password comes from the environment only, never from the config file.
	if err := v.BindEnv("database.password", "BREVETCOACH_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind BREVETCOACH_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
