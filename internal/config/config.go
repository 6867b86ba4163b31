// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Foyer"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Path string `envconfig:"DB_PATH" default:"foyer.db"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Advice struct {
		APIKey string `envconfig:"GEMINI_API_KEY"`
		Model  string `envconfig:"GEMINI_MODEL" default:"gemini-flash-latest"`
	}

	Backup struct {
		Endpoint      string        `envconfig:"BACKUP_S3_ENDPOINT"`
		Bucket        string        `envconfig:"BACKUP_S3_BUCKET"`
		Region        string        `envconfig:"BACKUP_S3_REGION" default:"auto"`
		AccessKey     string        `envconfig:"BACKUP_S3_ACCESS_KEY"`
		SecretKey     string        `envconfig:"BACKUP_S3_SECRET_KEY"`
		Passphrase    string        `envconfig:"BACKUP_PASSPHRASE"`
		Interval      time.Duration `envconfig:"BACKUP_INTERVAL" default:"24h"`
		RetentionDays int           `envconfig:"BACKUP_RETENTION_DAYS" default:"30"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
