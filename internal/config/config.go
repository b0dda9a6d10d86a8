package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Static  StaticConfig
	Log     LogConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Port            int
	Host            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StaticConfig struct {
	Dir string
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Production reports whether the service runs with production settings.
func (s ServerConfig) Production() bool {
	return s.Environment == "production"
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("HOST", "")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STATIC_DIR", "build")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("READ_TIMEOUT", "30s")
	v.SetDefault("WRITE_TIMEOUT", "30s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("METRICS_ENABLED", true)

	port, err := strconv.Atoi(v.GetString("PORT"))
	if err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", v.GetString("PORT"))
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            port,
			Host:            v.GetString("HOST"),
			Environment:     v.GetString("ENVIRONMENT"),
			ReadTimeout:     v.GetDuration("READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Static: StaticConfig{
			Dir: v.GetString("STATIC_DIR"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	return cfg, nil
}
