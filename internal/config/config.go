package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Bot struct {
		MonthlyReturnRate float64 `yaml:"monthly_return_rate"`
		TradeChance       float64 `yaml:"trade_chance"`
		WinBias           float64 `yaml:"win_bias"`
		HistoryCap        int     `yaml:"history_cap"`
		TradeLogCap       int     `yaml:"trade_log_cap"`
		TradeLogNewest    bool    `yaml:"trade_log_newest_first"`
	} `yaml:"bot"`
	Schedule struct {
		GrowthCron string `yaml:"growth_cron"`
		FeedCron   string `yaml:"feed_cron"`
	} `yaml:"schedule"`
	Display struct {
		USDRate float64 `yaml:"usd_rate"`
		UserID  string  `yaml:"user_id"`
	} `yaml:"display"`
	Feed struct {
		Mode string `yaml:"mode"`
		Cap  int    `yaml:"cap"`
	} `yaml:"feed"`
	Storage struct {
		DataDir    string `yaml:"data_dir"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"storage"`
	Seed struct {
		ChartPath string `yaml:"chart_path"`
		UsersPath string `yaml:"users_path"`
	} `yaml:"seed"`
	Log struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
	RandomSeed int64 `yaml:"random_seed"` // 0 means time-based
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PAPERFUND_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("PAPERFUND_SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("PAPERFUND_MONTHLY_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Bot.MonthlyReturnRate = rate
		}
	}
	if v := os.Getenv("PAPERFUND_USD_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Display.USDRate = rate
		}
	}
	if v := os.Getenv("PAPERFUND_RANDOM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RandomSeed = seed
		}
	}
	if v := os.Getenv("PAPERFUND_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Bot.MonthlyReturnRate == 0 {
		cfg.Bot.MonthlyReturnRate = 0.013
	}
	if cfg.Bot.TradeChance == 0 {
		cfg.Bot.TradeChance = 0.3
	}
	if cfg.Bot.WinBias == 0 {
		cfg.Bot.WinBias = 0.6
	}
	if cfg.Bot.HistoryCap == 0 {
		cfg.Bot.HistoryCap = 100
	}
	if cfg.Bot.TradeLogCap == 0 {
		cfg.Bot.TradeLogCap = 100
	}
	if cfg.Schedule.GrowthCron == "" {
		cfg.Schedule.GrowthCron = "*/5 * * * * *"
	}
	if cfg.Schedule.FeedCron == "" {
		cfg.Schedule.FeedCron = "*/10 * * * * *"
	}
	if cfg.Display.USDRate == 0 {
		cfg.Display.USDRate = 64000
	}
	if cfg.Feed.Mode == "" {
		cfg.Feed.Mode = "mempool"
	}
	if cfg.Feed.Cap == 0 {
		cfg.Feed.Cap = 10
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all configured values are usable.
func (c *Config) Validate() error {
	if c.Bot.MonthlyReturnRate < 0 {
		return fmt.Errorf("bot.monthly_return_rate must not be negative")
	}
	if c.Bot.TradeChance < 0 || c.Bot.TradeChance > 1 {
		return fmt.Errorf("bot.trade_chance must be within [0,1]")
	}
	if c.Bot.WinBias < 0 || c.Bot.WinBias > 1 {
		return fmt.Errorf("bot.win_bias must be within [0,1]")
	}
	if c.Display.USDRate <= 0 {
		return fmt.Errorf("display.usd_rate must be positive")
	}
	if c.Feed.Mode != "mempool" && c.Feed.Mode != "block" {
		return fmt.Errorf("feed.mode must be mempool or block")
	}
	return nil
}
