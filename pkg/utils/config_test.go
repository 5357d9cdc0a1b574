package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// empty values fall back to defaults
	for _, key := range []string{"APP_NAME", "PORT", "STORAGE_DRIVER", "CATALOG_URL", "CATALOG_SIZE",
		"BOOKING_DELAY", "PAYMENT_DELAY", "REDIRECT_DELAY", "PAYMENT_AMOUNT", "DEMO_USERNAME",
		"CHAT_REPLY_DELAY", "PASSWORD_RESET_DELAY", "LOG_FILE", "LOG_MAX_SIZE_MB"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localserve", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "https://randomuser.me/api/", cfg.Catalog.URL)
	assert.Equal(t, 20, cfg.Catalog.Size)
	assert.Equal(t, 1500*time.Millisecond, cfg.Booking.ConfirmDelay)
	assert.Equal(t, 3*time.Second, cfg.Booking.PaymentDelay)
	assert.Equal(t, 2*time.Second, cfg.Booking.RedirectDelay)
	assert.Equal(t, 500, cfg.Booking.PaymentAmount)
	assert.Equal(t, "demo", cfg.Demo.Username)
	assert.Equal(t, time.Second, cfg.Chat.ReplyDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Demo.ResetDelay)
	assert.Equal(t, "localserve.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CATALOG_SIZE", "5")
	t.Setenv("BOOKING_DELAY", "10ms")
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_FILE", "api.log")
	t.Setenv("LOG_MAX_BACKUPS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Catalog.Size)
	assert.Equal(t, 10*time.Millisecond, cfg.Booking.ConfirmDelay)
	assert.Equal(t, "api.log", cfg.Log.File)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}
