package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the storefront's environment-driven configuration.
type Config struct {
	Addr         string `env:"AEROSTRIDE_WEB_ADDR" envDefault:":8080"`
	Env          string `env:"AEROSTRIDE_WEB_ENV" envDefault:"dev"`
	TemplatesDir string `env:"AEROSTRIDE_WEB_TEMPLATES" envDefault:"templates"`
	AssetsDir    string `env:"AEROSTRIDE_WEB_ASSETS" envDefault:"assets"`
	ContentDir   string `env:"AEROSTRIDE_WEB_CONTENT" envDefault:"content"`
	CatalogPath  string `env:"AEROSTRIDE_WEB_CATALOG" envDefault:"assets/products.json"`
	SessionKey   string `env:"AEROSTRIDE_WEB_SESSION_KEY"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Prod reports whether the service runs with production settings
// (secure cookies, cached templates).
func (c Config) Prod() bool { return c.Env == "prod" }
