package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Snapshot persistence
	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"` // file | redis | sqlite
	DataPath        string `mapstructure:"DATA_PATH"`        // file backend
	SQLitePath      string `mapstructure:"SQLITE_PATH"`      // sqlite backend
	RedisURL        string `mapstructure:"REDIS_URL"`        // redis backend and job queue

	// Low-stock alert worker
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`
	AlertEmail     string `mapstructure:"ALERT_EMAIL"` // empty disables email alerts

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SNAPSHOT_BACKEND", "file")
	viper.SetDefault("DATA_PATH", "data/evolution_salon_data.json")
	viper.SetDefault("SQLITE_PATH", "data/evolution.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("WORKER_POOL_SIZE", 2)
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
