package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "shopflow"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "SHOPFLOW_APP_ENV"
	EnvPort     = "SHOPFLOW_APP_PORT"
	EnvTaxRate  = "SHOPFLOW_ENGINE_TAX_RATE"
	EnvDebounce = "SHOPFLOW_ENGINE_SEARCH_DEBOUNCE"
)

type Config struct {
	App    AppConfig
	Engine EngineConfig
	CORS   CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Engine.TaxRateDecimal(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPFLOW_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPFLOW_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPFLOW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type EngineConfig struct {
	TaxRate         string        `envconfig:"SHOPFLOW_ENGINE_TAX_RATE" default:"0.08"`
	SearchDebounce  time.Duration `envconfig:"SHOPFLOW_ENGINE_SEARCH_DEBOUNCE" default:"300ms"`
	CatalogSeedPath string        `envconfig:"SHOPFLOW_ENGINE_CATALOG_SEED_PATH"`
}

// TaxRateDecimal parses the configured tax rate and rejects negative values.
func (e EngineConfig) TaxRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(e.TaxRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s: %w", EnvTaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must be non-negative", EnvTaxRate)
	}
	return rate, nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPFLOW_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
