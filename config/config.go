package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBackendURL = "http://localhost:8080"
	defaultPlatform   = "binance"
	defaultIconCDN    = "https://cdn.jsdelivr.net/gh/vadimmalykhin/binance-icons/crypto"
)

// Config is the resolved client configuration. The refresh interval is not
// configurable; the tracker has always polled once a second.
type Config struct {
	BackendURL string
	Platform   string
	IconCDN    string
}

type configYaml struct {
	BackendURL string `yaml:"backend_url"`
	Platform   string `yaml:"platform"`
	IconCDN    string `yaml:"icon_cdn"`
}

// Get resolves configuration from flags, an optional YAML file and the
// environment (.env is loaded when present). Flags win over YAML, YAML
// over environment, environment over defaults.
func Get() (Config, error) {
	_ = godotenv.Load(".env")

	cfgPath := flag.String("config", "", "path to yaml config")
	backend := flag.String("backend", "", "portfolio backend base URL")
	platform := flag.String("platform", "", "quote source: binance or bybit")
	flag.Parse()

	cfg := Config{
		BackendURL: envOr("COINFOLIO_BACKEND", defaultBackendURL),
		Platform:   envOr("COINFOLIO_PLATFORM", defaultPlatform),
		IconCDN:    envOr("COINFOLIO_ICON_CDN", defaultIconCDN),
	}

	if *cfgPath != "" {
		data, err := os.ReadFile(*cfgPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var y configYaml
		if err := yaml.Unmarshal(data, &y); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if y.BackendURL != "" {
			cfg.BackendURL = y.BackendURL
		}
		if y.Platform != "" {
			cfg.Platform = y.Platform
		}
		if y.IconCDN != "" {
			cfg.IconCDN = y.IconCDN
		}
	}

	if *backend != "" {
		cfg.BackendURL = *backend
	}
	if *platform != "" {
		cfg.Platform = *platform
	}

	if cfg.Platform != "binance" && cfg.Platform != "bybit" {
		return Config{}, fmt.Errorf("unsupported platform %q", cfg.Platform)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
