package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Local store drivers.
const (
	LocalDriverFile   = "file"
	LocalDriverSQLite = "sqlite"
	LocalDriverRedis  = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Auth        AuthConfig
	RemoteStore RemoteStoreConfig
	Database    DatabaseConfig
	LocalStore  LocalStoreConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Catalog     CatalogConfig
	Notices     NoticeConfig
	Export      ExportConfig
}

// AuthConfig holds the shared staff password and session token settings.
type AuthConfig struct {
	Password     string
	PasswordHash string
	JWTSecret    string
	SessionTTL   time.Duration
}

// RemoteStoreConfig toggles the Postgres-backed inquiry store.
type RemoteStoreConfig struct {
	Enabled     bool
	AutoMigrate bool
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// LocalStoreConfig selects where the fallback inquiry blob lives.
type LocalStoreConfig struct {
	Driver string
	Path   string
	Key    string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig points at an optional catalog override file.
type CatalogConfig struct {
	File string
}

// NoticeConfig tunes the transient save banner.
type NoticeConfig struct {
	DismissAfter time.Duration
}

// ExportConfig tunes rendered inquiry exports.
type ExportConfig struct {
	Title string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Auth = AuthConfig{
		Password:     v.GetString("APP_PASSWORD"),
		PasswordHash: v.GetString("APP_PASSWORD_HASH"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		SessionTTL:   parseDuration(v.GetString("SESSION_TTL"), 0),
	}

	cfg.RemoteStore = RemoteStoreConfig{
		Enabled:     v.GetBool("REMOTE_STORE_ENABLED"),
		AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.LocalStore = LocalStoreConfig{
		Driver: strings.ToLower(strings.TrimSpace(v.GetString("LOCAL_STORE_DRIVER"))),
		Path:   v.GetString("LOCAL_STORE_PATH"),
		Key:    v.GetString("LOCAL_STORE_KEY"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Catalog = CatalogConfig{File: strings.TrimSpace(v.GetString("CATALOG_FILE"))}

	cfg.Notices = NoticeConfig{
		DismissAfter: parseDuration(v.GetString("NOTICE_DISMISS_AFTER"), 3*time.Second),
	}

	cfg.Export = ExportConfig{Title: v.GetString("EXPORT_TITLE")}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("APP_PASSWORD", "password")
	v.SetDefault("APP_PASSWORD_HASH", "")
	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("SESSION_TTL", "0")

	v.SetDefault("REMOTE_STORE_ENABLED", false)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "inquiry_desk")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("LOCAL_STORE_DRIVER", LocalDriverFile)
	v.SetDefault("LOCAL_STORE_PATH", "./data")
	v.SetDefault("LOCAL_STORE_KEY", "inquiries:v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("NOTICE_DISMISS_AFTER", "3s")
	v.SetDefault("EXPORT_TITLE", "Inquiries")
}

// isMissingFile covers viper returning a raw fs error when SetConfigFile points at a missing .env.
func isMissingFile(err error) bool {
	return strings.Contains(err.Error(), "no such file or directory") ||
		strings.Contains(err.Error(), "cannot find the file")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
