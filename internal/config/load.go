package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 5000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", DriverMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017/CRUD")
	v.SetDefault("MONGODB_DATABASE", "")
	v.SetDefault("MONGODB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "shop.events")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

// Load reads configuration from environment variables and, when present, the
// dotenv file at envFile. Environment variables take precedence over the file.
// An empty envFile skips the file.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Storage = strings.ToLower(cfg.Storage)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
