package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBackendURL      = "http://127.0.0.1:8000"
	defaultPort            = "8080"
	defaultBackendTimeout  = 10 * time.Second
	defaultRefreshInterval = 30 * time.Second
	defaultMailPort        = 587
	defaultDraftRateLimit  = 10
	defaultDBMaxConns      = 10
)

type Config struct {
	BackendURL      string
	BackendTimeout  time.Duration
	Port            string
	RefreshInterval time.Duration

	DatabaseURL      string
	DatabaseMaxConns int
	RabbitMQURL      string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	CORSAllowedOrigins []string
	DraftRateLimit     int
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Aviso: .env ignorado: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv monta a Config a partir de uma função de lookup.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		BackendURL:         stringOr(getenv("NEXUS_BACKEND_URL"), defaultBackendURL),
		Port:               stringOr(getenv("PORT"), defaultPort),
		DatabaseURL:        getenv("DATABASE_URL"),
		RabbitMQURL:        getenv("RABBITMQ_URL"),
		MailHost:           getenv("MAIL_HOST"),
		MailUser:           getenv("MAIL_USER"),
		MailPass:           getenv("MAIL_PASS"),
		MailFrom:           stringOr(getenv("MAIL_FROM"), getenv("MAIL_USER")),
		CORSAllowedOrigins: splitList(stringOr(getenv("CORS_ALLOWED_ORIGINS"), "http://localhost:5173")),
	}

	u, err := url.Parse(cfg.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("NEXUS_BACKEND_URL inválida: %q", cfg.BackendURL)
	}

	if cfg.BackendTimeout, err = durationOr(getenv("BACKEND_TIMEOUT"), defaultBackendTimeout); err != nil {
		return nil, fmt.Errorf("BACKEND_TIMEOUT: %w", err)
	}
	if cfg.RefreshInterval, err = durationOr(getenv("REFRESH_INTERVAL"), defaultRefreshInterval); err != nil {
		return nil, fmt.Errorf("REFRESH_INTERVAL: %w", err)
	}
	if cfg.MailPort, err = intOr(getenv("MAIL_PORT"), defaultMailPort); err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}
	if cfg.DraftRateLimit, err = intOr(getenv("DRAFT_RATE_LIMIT"), defaultDraftRateLimit); err != nil {
		return nil, fmt.Errorf("DRAFT_RATE_LIMIT: %w", err)
	}
	if cfg.DatabaseMaxConns, err = intOr(getenv("DB_MAX_CONNS"), defaultDBMaxConns); err != nil {
		return nil, fmt.Errorf("DB_MAX_CONNS: %w", err)
	}

	return cfg, nil
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != "" && c.MailFrom != ""
}

func stringOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func durationOr(v string, fallback time.Duration) (time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	if v == "0" {
		return 0, nil
	}
	return time.ParseDuration(strings.TrimSpace(v))
}

func intOr(v string, fallback int) (int, error) {
	if strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
