package config

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"portfolio-site/utils"
)

const defaultSecretKey = "super-secret-key"

// Config holds runtime settings for the portfolio server.
type Config struct {
	Port          string
	SecretKey     string
	SecureCookies bool
	GinMode       string

	DBDriver            string
	DatabaseURL         string
	DBLogLevel          string
	SQLiteBusyTimeoutMS int
	SQLiteJournalMode   string

	StaticDir      string
	CORSOrigins    string
	TrustedProxies string

	SMTP            utils.SMTPConfig
	AdminAlertEmail string
	SendAdminAlerts bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := &Config{
		Port:      utils.EnvOrDefault("PORT", "5000"),
		SecretKey: utils.EnvOrDefault("SECRET_KEY", defaultSecretKey),
		GinMode:   utils.EnvOrDefault("GIN_MODE", "release"),

		SecureCookies: utils.EnvBoolOrDefault("SECURE_COOKIES", false),

		DBDriver:            strings.ToLower(utils.EnvOrDefault("DB_DRIVER", DriverSQLite)),
		DatabaseURL:         utils.EnvOrDefault("DATABASE_URL", ""),
		DBLogLevel:          utils.EnvOrDefault("DB_LOG_LEVEL", "warn"),
		SQLiteBusyTimeoutMS: utils.EnvIntOrDefault("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:   utils.EnvOrDefault("SQLITE_JOURNAL_MODE", "WAL"),

		StaticDir:   utils.EnvOrDefault("STATIC_DIR", "static"),
		CORSOrigins: utils.EnvOrDefault("CORS_ORIGINS", "*"),

		TrustedProxies: utils.EnvOrDefault("TRUSTED_PROXIES", ""),

		SMTP: utils.SMTPConfig{
			Server:   utils.EnvOrDefault("SMTP_SERVER", ""),
			Port:     utils.EnvIntOrDefault("SMTP_PORT", 587),
			Username: utils.EnvOrDefault("SMTP_USERNAME", ""),
			Password: utils.EnvOrDefault("SMTP_PASSWORD", ""),
			UseTLS:   utils.EnvBoolOrDefault("SMTP_USE_TLS", true),
		},
		AdminAlertEmail: utils.EnvOrDefault("ADMIN_ALERT_EMAIL", ""),
		SendAdminAlerts: utils.EnvBoolOrDefault("SEND_ADMIN_ALERTS", false),
	}
	cfg.SMTP.Sender = utils.EnvOrDefault("EMAIL_SENDER", cfg.SMTP.Username)

	if cfg.SecretKey == defaultSecretKey {
		log.Println("⚠️  SECRET_KEY is not set; sessions are signed with the built-in default key")
	}
	return cfg
}

// ProjectsDir holds uploaded project images.
func (c *Config) ProjectsDir() string {
	return filepath.Join(c.StaticDir, "images", "projects")
}

// BlogsDir holds uploaded blog images.
func (c *Config) BlogsDir() string {
	return filepath.Join(c.StaticDir, "images", "blogs")
}

// ResumeDir holds the single resume file.
func (c *Config) ResumeDir() string {
	return filepath.Join(c.StaticDir, "resume")
}
