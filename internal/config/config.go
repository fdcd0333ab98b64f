// Package config loads application settings from the environment and an
// optional .env file.
package config

import (
	"net"
	"strconv"
	"time"
)

// Storage drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Port     int            `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string         `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Storage  string         `mapstructure:"storage_driver" validate:"required,oneof=mongo memory"`
	Mongo    MongoConfig    `mapstructure:",squash"`
	RabbitMQ RabbitMQConfig `mapstructure:",squash"`
	// CORSAllowedOrigins is a comma-separated list added to the built-in
	// development origins.
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

// MongoConfig contains the MongoDB connection settings.
type MongoConfig struct {
	URI            string        `mapstructure:"mongodb_uri" validate:"required,startswith=mongodb"`
	Database       string        `mapstructure:"mongodb_database"`
	ConnectTimeout time.Duration `mapstructure:"mongodb_connect_timeout" validate:"gt=0"`
}

// RabbitMQConfig contains the optional change-event broker settings. An empty
// URL disables publishing.
type RabbitMQConfig struct {
	URL      string `mapstructure:"rabbitmq_url" validate:"omitempty,startswith=amqp"`
	Exchange string `mapstructure:"rabbitmq_exchange" validate:"required"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.Port))
}
