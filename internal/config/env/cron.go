package env

import (
	"lotto_backend/internal/config"
	"os"
	"strconv"
)

const (
	cronEnabledEnvName      = "CRON_ENABLED"
	cronDrawPrefetchEnvName = "CRON_DRAW_PREFETCH"

	// Draws are published around 20:30 Taipei time, Monday to Saturday.
	defaultDrawPrefetch = "0 45 20 * * 1-6"
)

type cronConfig struct {
	enabled      bool
	drawPrefetch string
}

func NewCronConfig() (config.CronConfig, error) {
	cfg := &cronConfig{
		enabled:      true,
		drawPrefetch: os.Getenv(cronDrawPrefetchEnvName),
	}
	if len(cfg.drawPrefetch) == 0 {
		cfg.drawPrefetch = defaultDrawPrefetch
	}

	if enabled := os.Getenv(cronEnabledEnvName); len(enabled) != 0 {
		v, err := strconv.ParseBool(enabled)
		if err != nil {
			return nil, err
		}
		cfg.enabled = v
	}

	return cfg, nil
}

func (cfg *cronConfig) Enabled() bool {
	return cfg.enabled
}

func (cfg *cronConfig) DrawPrefetch() string {
	return cfg.drawPrefetch
}
