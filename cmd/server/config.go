package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything outside the DB_* settings, which stay with
// internal/dbconfig. Values from the environment override the file.
type Config struct {
	Server struct {
		Port        string   `yaml:"port"`
		BaseURL     string   `yaml:"base_url"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Auth struct {
		Secret     string `yaml:"secret"`
		LoginTTL   string `yaml:"login_ttl"`
		ConfirmTTL string `yaml:"confirm_ttl"`
	} `yaml:"auth"`

	Mail struct {
		APIKey string `yaml:"api_key"`
		From   string `yaml:"from"`
	} `yaml:"mail"`

	NATS struct {
		URL           string `yaml:"url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`

	Outbox struct {
		PollInterval string `yaml:"poll_interval"`
		BatchSize    int32  `yaml:"batch_size"`
	} `yaml:"outbox"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.Server.Port = getEnv("PORT", fallback(cfg.Server.Port, "8080"))
	cfg.Server.BaseURL = getEnv("BASE_URL", fallback(cfg.Server.BaseURL, "http://localhost:8080"))
	cfg.Auth.Secret = getEnv("AUTH_SECRET", cfg.Auth.Secret)
	cfg.Auth.LoginTTL = fallback(cfg.Auth.LoginTTL, "12h")
	cfg.Auth.ConfirmTTL = fallback(cfg.Auth.ConfirmTTL, "24h")
	cfg.Mail.APIKey = getEnv("RESEND_API_KEY", cfg.Mail.APIKey)
	cfg.Mail.From = getEnv("MAIL_FROM", fallback(cfg.Mail.From, "league <noreply@openpitch.dev>"))
	cfg.NATS.URL = getEnv("NATS_URL", fallback(cfg.NATS.URL, "nats://localhost:4222"))
	cfg.NATS.SubjectPrefix = fallback(cfg.NATS.SubjectPrefix, "league")
	cfg.Outbox.PollInterval = fallback(cfg.Outbox.PollInterval, "5s")
	if cfg.Outbox.BatchSize <= 0 {
		cfg.Outbox.BatchSize = 100
	}

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("AUTH_SECRET is required")
	}

	return &cfg, nil
}

func (c *Config) loginTTL() time.Duration   { return mustDuration(c.Auth.LoginTTL, 12*time.Hour) }
func (c *Config) confirmTTL() time.Duration { return mustDuration(c.Auth.ConfirmTTL, 24*time.Hour) }
func (c *Config) outboxPollInterval() time.Duration {
	return mustDuration(c.Outbox.PollInterval, 5*time.Second)
}

func mustDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
