package env

import (
	"fmt"
	"lotto_backend/internal/config"
	"os"
)

const (
	logLevelEnvName    = "LOG_LEVEL"
	logEncodingEnvName = "LOG_ENCODING"
)

type logConfig struct {
	level    string
	encoding string
}

func NewLogConfig() (config.LogConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}

	encoding := os.Getenv(logEncodingEnvName)
	switch encoding {
	case "":
		encoding = "json"
	case "json", "console":
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", encoding)
	}

	return &logConfig{
		level:    level,
		encoding: encoding,
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Encoding() string {
	return cfg.encoding
}
