package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Valkey   ValkeyConfig
	Catalog  CatalogConfig
	Booking  BookingConfig
	Chat     ChatConfig
	Demo     DemoConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	RateLimitPerMin int
}

// LogConfig drives the rotating file sink.
type LogConfig struct {
	Path       string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type StorageConfig struct {
	Driver string
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ValkeyConfig struct {
	Addr     string
	Password string
}

type CatalogConfig struct {
	URL     string
	Size    int
	Timeout time.Duration
}

type BookingConfig struct {
	ConfirmDelay  time.Duration
	PaymentDelay  time.Duration
	RedirectDelay time.Duration
	PaymentAmount int
}

type ChatConfig struct {
	ReplyDelay time.Duration
}

type DemoConfig struct {
	Username   string
	Email      string
	Password   string
	ResetDelay time.Duration
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "localserve")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_FILE", "localserve.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 7)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("LOG_COMPRESS", true)
	v.SetDefault("RATE_LIMIT_PER_MIN", 200)
	v.SetDefault("STORAGE_DRIVER", "file")
	v.SetDefault("STORAGE_PATH", "data/storage.json")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("VALKEY_ADDR", "localhost:6379")
	v.SetDefault("CATALOG_URL", "https://randomuser.me/api/")
	v.SetDefault("CATALOG_SIZE", 20)
	v.SetDefault("CATALOG_TIMEOUT", "5s")
	v.SetDefault("BOOKING_DELAY", "1500ms")
	v.SetDefault("PAYMENT_DELAY", "3s")
	v.SetDefault("REDIRECT_DELAY", "2s")
	v.SetDefault("PAYMENT_AMOUNT", 500)
	v.SetDefault("CHAT_REPLY_DELAY", "1s")
	v.SetDefault("PASSWORD_RESET_DELAY", "1500ms")
	v.SetDefault("DEMO_USERNAME", "demo")
	v.SetDefault("DEMO_EMAIL", "demo@localserve.com")
	v.SetDefault("DEMO_PASSWORD", "password123")

	// .env is optional, the environment alone is enough
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			RateLimitPerMin: v.GetInt("RATE_LIMIT_PER_MIN"),
		},
		Log: LogConfig{
			Path:       v.GetString("LOG_PATH"),
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
			Compress:   v.GetBool("LOG_COMPRESS"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
			Path:   v.GetString("STORAGE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Valkey: ValkeyConfig{
			Addr:     v.GetString("VALKEY_ADDR"),
			Password: v.GetString("VALKEY_PASSWORD"),
		},
		Catalog: CatalogConfig{
			URL:     v.GetString("CATALOG_URL"),
			Size:    v.GetInt("CATALOG_SIZE"),
			Timeout: v.GetDuration("CATALOG_TIMEOUT"),
		},
		Booking: BookingConfig{
			ConfirmDelay:  v.GetDuration("BOOKING_DELAY"),
			PaymentDelay:  v.GetDuration("PAYMENT_DELAY"),
			RedirectDelay: v.GetDuration("REDIRECT_DELAY"),
			PaymentAmount: v.GetInt("PAYMENT_AMOUNT"),
		},
		Chat: ChatConfig{
			ReplyDelay: v.GetDuration("CHAT_REPLY_DELAY"),
		},
		Demo: DemoConfig{
			Username:   v.GetString("DEMO_USERNAME"),
			Email:      v.GetString("DEMO_EMAIL"),
			Password:   v.GetString("DEMO_PASSWORD"),
			ResetDelay: v.GetDuration("PASSWORD_RESET_DELAY"),
		},
	}

	return config, nil
}
