// Package config loads terminal settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Config holds every setting the terminal and CLI read.
type Config struct {
	APIURL        string
	Port          string
	HTTPTimeout   time.Duration
	StrictPricing bool
	ReceiptWidth  int
	NameWidth     int
	Currency      string
	ShopName      string
	ShopAddress   string
	ShopPhone     string
	Debug         bool
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing .env files are not an error; malformed values are.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIURL:      getEnv("POS_API_URL", "http://localhost:8080"),
		Port:        getEnv("PORT", "50210"),
		Currency:    getEnv("POS_CURRENCY", "Rs"),
		ShopName:    getEnv("POS_SHOP_NAME", "PIZZA SHOP"),
		ShopAddress: getEnv("POS_SHOP_ADDRESS", "123 Pizza Street, Food City"),
		ShopPhone:   getEnv("POS_SHOP_PHONE", "(123) 456-7890"),
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("POS_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.StrictPricing, err = getBool("POS_STRICT_PRICING", false); err != nil {
		return nil, err
	}
	if cfg.Debug, err = getBool("POS_DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.ReceiptWidth, err = getInt("POS_RECEIPT_WIDTH", 32); err != nil {
		return nil, err
	}
	if cfg.NameWidth, err = getInt("POS_RECEIPT_NAME_WIDTH", 12); err != nil {
		return nil, err
	}
	if cfg.NameWidth >= cfg.ReceiptWidth {
		return nil, errors.Newf("POS_RECEIPT_NAME_WIDTH (%d) must be smaller than POS_RECEIPT_WIDTH (%d)",
			cfg.NameWidth, cfg.ReceiptWidth)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, errors.Newf("%s: expected a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Newf("%s: expected true or false, got %q", key, v)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, errors.Newf("%s: expected a positive duration such as 10s, got %q", key, v)
	}
	return d, nil
}
