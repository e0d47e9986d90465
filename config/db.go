package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-site/models"
	"portfolio-site/utils"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	defaultSQLitePath = "database/portfolio.db"

	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "timothy"
)

// SeedDatabase creates the default admin account when it is missing.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	if err := db.Model(&models.Admin{}).Where("username = ?", DefaultAdminUsername).Count(&adminCount).Error; err != nil {
		log.Printf("warning: failed to look up default admin: %v", err)
		return
	}
	if adminCount > 0 {
		log.Println("Admin user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.Admin{
		Username: DefaultAdminUsername,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Printf("Default admin created: username=%q", DefaultAdminUsername)
}

// Migrate creates every table idempotently.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Message{},
		&models.Project{},
		&models.Blog{},
		&models.Visit{},
		&models.Feedback{},
	)
}

// ConnectDatabase opens the configured database, applies migrations and seeds
// the default admin.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	SeedDatabase(db)
	return db, nil
}

// OpenDatabase opens a gorm connection for cfg.DBDriver without migrating.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(cfg.DBLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY churn
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	return db, nil
}

func dialectorFor(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", DriverSQLite:
		path := cfg.DatabaseURL
		if path == "" {
			path = defaultSQLitePath
		}
		if err := ensureSQLiteDir(path); err != nil {
			return nil, err
		}
		return sqlite.Open(buildSQLiteDSN(path, cfg.SQLiteBusyTimeoutMS, cfg.SQLiteJournalMode)), nil
	case DriverMySQL:
		dsn, err := resolveMySQLDSN(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for postgres")
		}
		return postgres.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info", "debug":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ----------------------------------------------------
// SQLite
// ----------------------------------------------------

func ensureSQLiteDir(path string) error {
	if strings.HasPrefix(path, "file:") || strings.Contains(path, ":memory:") {
		return nil
	}
	base, _, _ := strings.Cut(path, "?")
	dir := filepath.Dir(base)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir database dir: %w", err)
	}
	return nil
}

// buildSQLiteDSN appends busy_timeout, journal_mode and foreign_keys pragmas
// to path, preserving any query parameters already present.
func buildSQLiteDSN(path string, busyTimeoutMS int, journalMode string) string {
	base, rawQuery, _ := strings.Cut(path, "?")
	query, _ := url.ParseQuery(rawQuery)

	if busyTimeoutMS > 0 {
		query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	}
	if mode := normalizeSQLiteJournalMode(journalMode); mode != "" {
		query.Add("_pragma", fmt.Sprintf("journal_mode(%s)", mode))
	}
	query.Add("_pragma", "foreign_keys(1)")

	return base + "?" + query.Encode()
}

func normalizeSQLiteJournalMode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	default:
		return ""
	}
}

// ----------------------------------------------------
// MySQL
// ----------------------------------------------------

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	mc := mysqldriver.NewConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(u.Hostname(), port)
	mc.DBName = dbName
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{}

	q := u.Query()
	for key := range q {
		switch key {
		case "parseTime", "loc":
		default:
			mc.Params[key] = q.Get(key)
		}
	}
	if _, ok := mc.Params["charset"]; !ok {
		mc.Params["charset"] = "utf8mb4"
	}
	return mc.FormatDSN(), nil
}

func resolveMySQLDSN(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("MYSQL_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		mc, err := mysqldriver.ParseDSN(raw)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	}

	mc := mysqldriver.NewConfig()
	mc.User = utils.EnvOrDefault("DB_USER", "root")
	mc.Passwd = utils.EnvOrDefault("DB_PASS", "")
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(utils.EnvOrDefault("DB_HOST", "127.0.0.1"), utils.EnvOrDefault("DB_PORT", "3306"))
	mc.DBName = utils.EnvOrDefault("DB_NAME", "portfolio")
	mc.ParseTime = true
	mc.Loc = time.Local
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN(), nil
}
