package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"POS_API_URL", "PORT", "POS_HTTP_TIMEOUT", "POS_STRICT_PRICING", "POS_RECEIPT_WIDTH",
	"POS_RECEIPT_NAME_WIDTH", "POS_CURRENCY", "POS_SHOP_NAME", "POS_SHOP_ADDRESS",
	"POS_SHOP_PHONE", "POS_DEBUG",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, "50210", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.False(t, cfg.StrictPricing)
	assert.Equal(t, 32, cfg.ReceiptWidth)
	assert.Equal(t, 12, cfg.NameWidth)
	assert.Equal(t, "Rs", cfg.Currency)
	assert.Equal(t, "PIZZA SHOP", cfg.ShopName)
	assert.False(t, cfg.Debug)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POS_API_URL", "http://pos.internal:9000")
	t.Setenv("POS_HTTP_TIMEOUT", "2500ms")
	t.Setenv("POS_STRICT_PRICING", "true")
	t.Setenv("POS_RECEIPT_WIDTH", "40")
	t.Setenv("POS_RECEIPT_NAME_WIDTH", "18")
	t.Setenv("POS_CURRENCY", "LKR")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://pos.internal:9000", cfg.APIURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.HTTPTimeout)
	assert.True(t, cfg.StrictPricing)
	assert.Equal(t, 40, cfg.ReceiptWidth)
	assert.Equal(t, 18, cfg.NameWidth)
	assert.Equal(t, "LKR", cfg.Currency)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"POS_HTTP_TIMEOUT", "soon"},
		{"POS_HTTP_TIMEOUT", "-1s"},
		{"POS_STRICT_PRICING", "maybe"},
		{"POS_RECEIPT_WIDTH", "wide"},
		{"POS_RECEIPT_WIDTH", "0"},
		{"POS_RECEIPT_NAME_WIDTH", "40"},
		{"POS_DEBUG", "yes please"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	for _, k := range allKeys {
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), "pos.env")
	require.NoError(t, os.WriteFile(path, []byte("POS_API_URL=http://from-file:8080\nPORT=6000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:8080", cfg.APIURL)
	assert.Equal(t, "6000", cfg.Port)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), "pos.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=6000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
