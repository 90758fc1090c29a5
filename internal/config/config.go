package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Archive ArchiveConfig
	Ingest  IngestConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// ArchiveConfig holds raw report archive settings. Provider "noop" disables
// archiving; "s3" stores every uploaded report in the configured bucket.
type ArchiveConfig struct {
	Provider  string `mapstructure:"provider"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// IngestConfig holds upload handling settings.
type IngestConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload size cap in bytes.
func (i *IngestConfig) MaxFileSizeBytes() int64 {
	return i.MaxFileSizeMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the COMMIS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMMIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "commis")
	v.SetDefault("db.password", "commis_secret")
	v.SetDefault("db.name", "commis_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Archive defaults
	v.SetDefault("archive.provider", "noop")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.bucket", "commis-reports")
	v.SetDefault("archive.endpoint", "")

	// Ingest defaults
	v.SetDefault("ingest.max_file_size_mb", 25)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "COMMIS_SERVER_PORT",
		"server.read_timeout":     "COMMIS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "COMMIS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "COMMIS_SERVER_ENVIRONMENT",
		"db.host":                 "COMMIS_DB_HOST",
		"db.port":                 "COMMIS_DB_PORT",
		"db.user":                 "COMMIS_DB_USER",
		"db.password":             "COMMIS_DB_PASSWORD",
		"db.name":                 "COMMIS_DB_NAME",
		"db.sslmode":              "COMMIS_DB_SSLMODE",
		"db.max_open":             "COMMIS_DB_MAX_OPEN",
		"db.max_idle":             "COMMIS_DB_MAX_IDLE",
		"archive.provider":        "COMMIS_ARCHIVE_PROVIDER",
		"archive.region":          "COMMIS_ARCHIVE_REGION",
		"archive.bucket":          "COMMIS_ARCHIVE_BUCKET",
		"archive.endpoint":        "COMMIS_ARCHIVE_ENDPOINT",
		"archive.access_key":      "COMMIS_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":      "COMMIS_ARCHIVE_SECRET_KEY",
		"ingest.max_file_size_mb": "COMMIS_INGEST_MAX_FILE_SIZE_MB",
		"log.level":               "COMMIS_LOG_LEVEL",
		"log.format":              "COMMIS_LOG_FORMAT",
		"cors.allowed_origins":    "COMMIS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if COMMIS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("COMMIS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Archive = ArchiveConfig{
		Provider:  v.GetString("archive.provider"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
	}
	cfg.Ingest = IngestConfig{
		MaxFileSizeMB: v.GetInt64("ingest.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
