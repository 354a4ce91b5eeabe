package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port string

	DbDriver   string // postgres|sqlite
	DbHost     string
	DbPort     string
	DbUser     string
	DbPass     string
	DbName     string
	DbSSLMode  string
	SQLitePath string

	Log      string
	LogLevel string
	Env      string // dev|prod

	CORSOrigins []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		DbDriver:   strings.ToLower(def(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DbHost:     os.Getenv("DB_HOST"),
		DbPort:     def(os.Getenv("DB_PORT"), "5432"),
		DbUser:     os.Getenv("DB_USER"),
		DbPass:     os.Getenv("DB_PASSWORD"),
		DbName:     os.Getenv("DB_NAME"),
		DbSSLMode:  def(os.Getenv("DB_SSLMODE"), "disable"),
		SQLitePath: def(os.Getenv("SQLITE_PATH"), "articles.db"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CORSOrigins: splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	switch cfg.DbDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (postgres|sqlite)", cfg.DbDriver)
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbDriver == DriverPostgres && (c.DbHost == "" || c.DbUser == "" || c.DbName == "") {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}
	if c.DbDriver == DriverSQLite && c.SQLitePath == ":memory:" {
		warnings = append(warnings, "SQLITE_PATH is :memory:, data is lost on restart")
	}

	if len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*" && c.Env == "prod" {
		warnings = append(warnings, "CORS_ORIGINS allows any origin")
	}

	// PORT
	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	if c.DbDriver == DriverSQLite {
		return "sqlite://" + c.SQLitePath
	}
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
