// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Database struct {
		Host       string `env:"DB_HOST" envDefault:"localhost"`
		Port       string `env:"DB_PORT" envDefault:"5432"`
		User       string `env:"DB_USER" envDefault:"postgres"`
		Password   string `env:"DB_PASSWORD"`
		Name       string `env:"DB_NAME" envDefault:"orghub"`
		SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
		SearchPath string `env:"DB_SCHEMA" envDefault:"public"`
	}
	JWT struct {
		Secret       string        `env:"JWT_SECRET" envDefault:"your-secret-key"`
		ExpiryPeriod time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	}
	Server struct {
		Port         string        `env:"SERVER_PORT" envDefault:"8080"`
		ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	}
	Sendgrid struct {
		APIKey   string `env:"SENDGRID_API_KEY"`
		From     string `env:"SENDGRID_FROM"`
		FromName string `env:"SENDGRID_FROM_NAME"`
	}
	SMTP struct {
		Host     string `env:"SMTP_HOST"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		Username string `env:"SMTP_USERNAME"`
		Password string `env:"SMTP_PASSWORD"`
		From     string `env:"SMTP_FROM"`
		FromName string `env:"SMTP_FROM_NAME"`
	}
	Mail struct {
		// Async controls whether notifications are queued to a background
		// worker pool or sent inline. Either way, failures never reach the
		// caller.
		Async   bool `env:"MAIL_ASYNC" envDefault:"true"`
		Workers int  `env:"MAIL_WORKERS" envDefault:"4"`
	}
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
