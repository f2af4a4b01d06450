package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported values for AppConfig.StoreDriver.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMinIO    = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `yaml:"host"`
	Port               string `yaml:"port"`
	User               string `yaml:"user"`
	Password           string `yaml:"password"`
	Name               string `yaml:"name"`
	SSLMode            string `yaml:"ssl_mode"`
	MaxOpenConns       int    `yaml:"max_open_conns"`
	MaxIdleConns       int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeSec int    `yaml:"conn_max_lifetime_sec"`
}

// SQLiteConfig holds settings for the embedded SQLite store.
type SQLiteConfig struct {
	Path          string `yaml:"path"`
	BusyTimeoutMs int    `yaml:"busy_timeout_ms"`
	MaxOpenConns  int    `yaml:"max_open_conns"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// AppConfig is the centralized configuration struct for the application.
// Values come from an optional YAML file (CONFIG_FILE) overridden by
// environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost            string         `yaml:"app_host"`
	Port               string         `yaml:"port"`
	Timezone           string         `yaml:"timezone"`
	ShutdownTimeoutSec int            `yaml:"shutdown_timeout_sec"`
	StoreDriver        string         `yaml:"store_driver"`
	Database           DatabaseConfig `yaml:"database"`
	SQLite             SQLiteConfig   `yaml:"sqlite"`
	MinIO              MinIOConfig    `yaml:"minio"`
}

func defaults() *AppConfig {
	return &AppConfig{
		AppHost:            "localhost:8080",
		Port:               "8080",
		Timezone:           "UTC",
		ShutdownTimeoutSec: 10,
		StoreDriver:        StoreDriverPostgres,
		Database: DatabaseConfig{
			Port:               "5432",
			SSLMode:            "disable",
			MaxOpenConns:       10,
			MaxIdleConns:       5,
			ConnMaxLifetimeSec: 300,
		},
		SQLite: SQLiteConfig{
			Path:          "employees.db",
			BusyTimeoutMs: 5000,
		},
	}
}

// Load reads configuration from CONFIG_FILE (if set) and environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() (*AppConfig, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	c.AppHost = getEnv("APP_HOST", c.AppHost)
	c.Port = getEnv("PORT", c.Port)
	c.Timezone = getEnv("APP_TIMEZONE", c.Timezone)
	c.ShutdownTimeoutSec = getEnvInt("SHUTDOWN_TIMEOUT_SEC", c.ShutdownTimeoutSec)
	c.StoreDriver = getEnv("STORE_DRIVER", c.StoreDriver)

	db := &c.Database
	db.Host = getEnv("DB_HOST", db.Host)
	db.Port = getEnv("DB_PORT", db.Port)
	db.User = getEnv("DB_USER", db.User)
	db.Password = getEnv("DB_PASSWORD", db.Password)
	db.Name = getEnv("DB_NAME", db.Name)
	db.SSLMode = getEnv("DB_SSLMODE", db.SSLMode)
	db.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.ConnMaxLifetimeSec = getEnvInt("DB_CONN_MAX_LIFETIME_SEC", db.ConnMaxLifetimeSec)

	c.SQLite.Path = getEnv("SQLITE_PATH", c.SQLite.Path)
	c.SQLite.BusyTimeoutMs = getEnvInt("SQLITE_BUSY_TIMEOUT_MS", c.SQLite.BusyTimeoutMs)
	c.SQLite.MaxOpenConns = getEnvInt("SQLITE_MAX_OPEN_CONNS", c.SQLite.MaxOpenConns)

	m := &c.MinIO
	m.Endpoint = getEnv("MINIO_ENDPOINT", m.Endpoint)
	m.AccessKey = getEnv("MINIO_ACCESS_KEY", m.AccessKey)
	m.SecretKey = getEnv("MINIO_SECRET_KEY", m.SecretKey)
	m.Bucket = getEnv("MINIO_BUCKET", m.Bucket)
	m.UseSSL = getEnvBool("MINIO_USE_SSL", m.UseSSL)
}

// Validate rejects settings the server cannot start with.
func (c *AppConfig) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMinIO:
	default:
		return fmt.Errorf("config: unsupported store driver %q", c.StoreDriver)
	}
	if c.Port == "" {
		return fmt.Errorf("config: port must be set")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone for log timestamps.
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
