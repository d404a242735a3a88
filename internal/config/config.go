package config

import (
	"lotto_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// RatesConfig is the prize and cost table players see in the sidebar.
type RatesConfig interface {
	RateTable() model.RateTable
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
	Encoding() string
}

// ScraperConfig points the draw client at the results site.
type ScraperConfig interface {
	BaseURL() string
	Timeout() time.Duration
	UserAgent() string
}

type CronConfig interface {
	Enabled() bool
	// DrawPrefetch is a cron spec with a seconds field.
	DrawPrefetch() string
}
