// internal/config/config.go
// Environment-based configuration for the relay binaries.
package config

import (
	"os"
)

// BuildVersion is stamped via -ldflags at release time.
var BuildVersion = "dev"

type Config struct {
	AppName string
	AppEnv  string
	Port    string

	CoinGecko struct {
		APIBase string
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "mcp-coingecko")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.Port = getEnv("PORT", "3000")

	// CoinGecko upstream. The base override exists for proxies and tests.
	c.CoinGecko.APIBase = getEnv("COINGECKO_API_BASE", "https://api.coingecko.com/api/v3")

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
