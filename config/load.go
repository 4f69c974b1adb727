package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

func Load() App {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("config load failed", "err", err)
		panic(err)
	}
	if cfg.LoanPeriodDays < 1 {
		cfg.LoanPeriodDays = 14
	}
	if cfg.LateFeePerDay < 0 {
		cfg.LateFeePerDay = 0
	}
	return cfg
}
