// Package config loads the application configuration from a YAML file,
// environment variables and built-in defaults, in that order of precedence
// (environment wins over the file).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"etf_dashboard/internal/feature/analysis/domain/calculator"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Log      LogConfig      `yaml:"log" envconfig:"LOG"`
	Market   MarketConfig   `yaml:"market" envconfig:"MARKET"`
	Cache    CacheConfig    `yaml:"cache" envconfig:"CACHE"`
	Database DatabaseConfig `yaml:"database" envconfig:"DATABASE"`
	Warmer   WarmerConfig   `yaml:"warmer" envconfig:"WARMER"`
	Metrics  MetricsConfig  `yaml:"metrics" envconfig:"METRICS"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    string `yaml:"port" envconfig:"PORT"`
	GinMode string `yaml:"gin_mode" envconfig:"GIN_MODE"`
}

// LogConfig configures slog.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

// MarketConfig configures the market data provider and the analysis.
type MarketConfig struct {
	BaseURL           string        `yaml:"base_url" envconfig:"YAHOO_BASE_URL"`
	UserAgent         string        `yaml:"user_agent" envconfig:"YAHOO_USER_AGENT"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"YAHOO_TIMEOUT"`
	RequestsPerMinute int           `yaml:"requests_per_minute" envconfig:"YAHOO_REQUESTS_PER_MINUTE"`
	MaxConnsPerHost   int           `yaml:"max_conns_per_host" envconfig:"YAHOO_MAX_CONNS_PER_HOST"`
	Benchmark         string        `yaml:"benchmark" envconfig:"BENCHMARK"`
	RiskFreeRate      float64       `yaml:"risk_free_rate" envconfig:"RISK_FREE_RATE"`
	InitialInvestment float64       `yaml:"initial_investment" envconfig:"INITIAL_INVESTMENT"`
	DefaultPeriod     string        `yaml:"default_period" envconfig:"DEFAULT_PERIOD"`
}

// CacheConfig configures the Redis history cache.
type CacheConfig struct {
	Disabled  bool          `yaml:"disabled" envconfig:"CACHE_DISABLED"`
	Addr      string        `yaml:"addr" envconfig:"REDIS_ADDR"`
	Password  string        `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB        int           `yaml:"db" envconfig:"REDIS_DB"`
	TTL       time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`
	Namespace string        `yaml:"namespace" envconfig:"CACHE_NAMESPACE"`
}

// DatabaseConfig configures the catalogue database.
type DatabaseConfig struct {
	Driver         string        `yaml:"driver" envconfig:"DB_DRIVER"`
	SQLitePath     string        `yaml:"sqlite_path" envconfig:"DB_SQLITE_PATH"`
	Host           string        `yaml:"host" envconfig:"DB_HOST"`
	Port           string        `yaml:"port" envconfig:"DB_PORT"`
	User           string        `yaml:"user" envconfig:"DB_USER"`
	Password       string        `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string        `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string        `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" envconfig:"DB_CONNECT_TIMEOUT"`
	RunMigrations  bool          `yaml:"run_migrations" envconfig:"RUN_MIGRATIONS"`
}

// WarmerConfig configures the cache warmer. An empty schedule disables it.
type WarmerConfig struct {
	Schedule string `yaml:"schedule" envconfig:"WARMER_SCHEDULE"`
}

// MetricsConfig names the Prometheus collectors.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`
	Subsystem string `yaml:"subsystem" envconfig:"METRICS_SUBSYSTEM"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	// ゼロ値も有効な設定値なので、読み込み前に既定値を入れておく
	cfg := &Config{
		Market: MarketConfig{RiskFreeRate: calculator.DefaultRiskFreeRate},
		Warmer: WarmerConfig{Schedule: DefaultWarmerSchedule},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// DefaultWarmerSchedule runs the cache warmer every 30 minutes (seconds field first).
const DefaultWarmerSchedule = "0 */30 * * * *"

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Market.BaseURL == "" {
		c.Market.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Market.UserAgent == "" {
		c.Market.UserAgent = "Mozilla/5.0"
	}
	if c.Market.Timeout == 0 {
		c.Market.Timeout = 10 * time.Second
	}
	if c.Market.RequestsPerMinute == 0 {
		c.Market.RequestsPerMinute = 60
	}
	if c.Market.Benchmark == "" {
		c.Market.Benchmark = "^GSPC"
	}
	if c.Market.InitialInvestment == 0 {
		c.Market.InitialInvestment = 100
	}
	if c.Market.DefaultPeriod == "" {
		c.Market.DefaultPeriod = candles.DefaultPeriod.String()
	}
	if c.Cache.Addr == "" {
		c.Cache.Addr = "localhost:6379"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Cache.Namespace == "" {
		c.Cache.Namespace = "history"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/etf_dashboard.db"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.ConnectTimeout == 0 {
		c.Database.ConnectTimeout = 60 * time.Second
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "etf_dashboard"
	}
	if c.Metrics.Subsystem == "" {
		c.Metrics.Subsystem = "analysis"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := candles.ParsePeriod(c.Market.DefaultPeriod); err != nil {
		return fmt.Errorf("market.default_period: %w", err)
	}
	if c.Market.Timeout <= 0 {
		return fmt.Errorf("market.timeout must be positive")
	}
	if c.Market.RequestsPerMinute < 0 {
		return fmt.Errorf("market.requests_per_minute must not be negative")
	}
	if c.Market.InitialInvestment <= 0 {
		return fmt.Errorf("market.initial_investment must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("database.connect_timeout must be positive")
	}
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("database.host and database.name are required for postgres")
		}
	default:
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}
	return nil
}
