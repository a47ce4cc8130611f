package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad_Defaults はファイルが存在しない場合にデフォルト値が適用されることを検証します。
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://query1.finance.yahoo.com", cfg.Market.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Market.Timeout)
	assert.Equal(t, "^GSPC", cfg.Market.Benchmark)
	assert.InDelta(t, 0.0427, cfg.Market.RiskFreeRate, 1e-12)
	assert.Equal(t, 100.0, cfg.Market.InitialInvestment)
	assert.Equal(t, "1mo", cfg.Market.DefaultPeriod)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultWarmerSchedule, cfg.Warmer.Schedule)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, `
server:
  port: "9000"
market:
  benchmark: "^NDX"
  risk_free_rate: 0.05
  timeout: 3s
  default_period: 1y
cache:
  disabled: true
  ttl: 90s
database:
  driver: postgres
  host: db
  name: etf
warmer:
  schedule: ""
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "^NDX", cfg.Market.Benchmark)
	assert.InDelta(t, 0.05, cfg.Market.RiskFreeRate, 1e-12)
	assert.Equal(t, 3*time.Second, cfg.Market.Timeout)
	assert.Equal(t, "1y", cfg.Market.DefaultPeriod)
	assert.True(t, cfg.Cache.Disabled)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Empty(t, cfg.Warmer.Schedule, "an explicit empty schedule disables the warmer")
	assert.NoError(t, cfg.Validate())
}

// TestLoad_EnvOverridesYAML は環境変数がYAMLより優先されることを検証します。
func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "server:\n  port: \"9000\"\nlog:\n  level: debug\n")
	t.Setenv("PORT", "7000")
	t.Setenv("RISK_FREE_RATE", "0.03")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/x.db")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 0.03, cfg.Market.RiskFreeRate, 1e-12)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
}

// TestLoad_ZeroRiskFreeRate はリスクフリーレート0が既定値で上書きされないことを検証します。
func TestLoad_ZeroRiskFreeRate(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cfg, err := Load(writeFile(t, "market:\n  risk_free_rate: 0\n"))

		require.NoError(t, err)
		assert.Zero(t, cfg.Market.RiskFreeRate)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("RISK_FREE_RATE", "0")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Zero(t, cfg.Market.RiskFreeRate)
	})
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeFile(t, "server: [unclosed"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("YAHOO_TIMEOUT", "soon")
	_, err := Load("")
	assert.ErrorContains(t, err, "env config")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad default period", mutate: func(c *Config) { c.Market.DefaultPeriod = "2w" }, errMsg: "market.default_period"},
		{name: "negative timeout", mutate: func(c *Config) { c.Market.Timeout = -time.Second }, errMsg: "market.timeout"},
		{name: "negative rate limit", mutate: func(c *Config) { c.Market.RequestsPerMinute = -1 }, errMsg: "requests_per_minute"},
		{name: "zero investment", mutate: func(c *Config) { c.Market.InitialInvestment = -5 }, errMsg: "initial_investment"},
		{name: "negative cache ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, errMsg: "cache.ttl"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, errMsg: "not supported"},
		{name: "postgres without host", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, errMsg: "required for postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
