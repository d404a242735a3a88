package env

import (
	"fmt"
	"lotto_backend/internal/config"
	"os"
	"time"
)

const (
	scraperURLEnvName       = "SCRAPER_BASE_URL"
	scraperTimeoutEnvName   = "SCRAPER_TIMEOUT"
	scraperUserAgentEnvName = "SCRAPER_USER_AGENT"

	defaultScraperURL       = "https://www.pilio.idv.tw"
	defaultScraperTimeout   = 10 * time.Second
	defaultScraperUserAgent = "Mozilla/5.0"
)

type scraperConfig struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
}

func NewScraperConfig() (config.ScraperConfig, error) {
	cfg := &scraperConfig{
		baseURL:   os.Getenv(scraperURLEnvName),
		timeout:   defaultScraperTimeout,
		userAgent: os.Getenv(scraperUserAgentEnvName),
	}
	if len(cfg.baseURL) == 0 {
		cfg.baseURL = defaultScraperURL
	}
	if len(cfg.userAgent) == 0 {
		cfg.userAgent = defaultScraperUserAgent
	}

	if timeout := os.Getenv(scraperTimeoutEnvName); len(timeout) != 0 {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid scraper timeout: %w", err)
		}
		cfg.timeout = parsed
	}

	return cfg, nil
}

func (cfg *scraperConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *scraperConfig) Timeout() time.Duration {
	return cfg.timeout
}

func (cfg *scraperConfig) UserAgent() string {
	return cfg.userAgent
}
