package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	// BusinessInbox receives the order notifications.
	BusinessInbox string
}

type Config struct {
	Port           string
	BaseURL        string
	DataDir        string
	ShareSecret    string
	ShareTTL       time.Duration
	MaxBodyBytes   int64
	WhatsAppNumber string
	SMTP           SMTPConfig
}

func LoadConfig() (Config, error) {
	cfg := Config{}

	cfg.Port = envOrDefault("PORT", "8080")
	cfg.BaseURL = envOrDefault("BASE_URL", fmt.Sprintf("http://localhost:%s", cfg.Port))
	cfg.DataDir = envOrDefault("DATA_DIR", "data")
	cfg.ShareSecret = envOrDefault("SHARE_SECRET", "change-me")
	cfg.WhatsAppNumber = envOrDefault("WHATSAPP_NUMBER", "+91 00000 00000")

	shareTTLSeconds, err := parseIntEnv("SHARE_TTL_SECONDS", 86400)
	if err != nil {
		return Config{}, fmt.Errorf("parse SHARE_TTL_SECONDS: %w", err)
	}
	cfg.ShareTTL = time.Duration(shareTTLSeconds) * time.Second

	maxBodyKB, err := parseIntEnv("MAX_BODY_KB", 256)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_BODY_KB: %w", err)
	}
	cfg.MaxBodyBytes = maxBodyKB * 1024

	// Mail settings carry no defaults on purpose: credentials come from
	// the environment or the mailer stays unconfigured and submissions
	// take the fallback path.
	cfg.SMTP.Host = os.Getenv("SMTP_HOST")
	cfg.SMTP.Username = os.Getenv("SMTP_USERNAME")
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	cfg.SMTP.Sender = os.Getenv("SMTP_SENDER")
	cfg.SMTP.BusinessInbox = os.Getenv("ORDER_INBOX")

	smtpPort, err := parseIntEnv("SMTP_PORT", 587)
	if err != nil {
		return Config{}, fmt.Errorf("parse SMTP_PORT: %w", err)
	}
	cfg.SMTP.Port = int(smtpPort)

	absDataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = absDataDir

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int64) (int64, error) {
	value := envOrDefault(key, "")
	if value == "" {
		return fallback, nil
	}

	num, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}
