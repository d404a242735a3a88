package env

import (
	"fmt"
	"lotto_backend/internal/config"
	"lotto_backend/internal/model"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type ratesFile struct {
	Rates struct {
		BaseUnit int64           `yaml:"base_unit"`
		Discount float64         `yaml:"discount"`
		Tiers    map[int]float64 `yaml:"tiers"`
		Ride     struct {
			Prize float64 `yaml:"prize"`
			Cost  float64 `yaml:"cost"`
		} `yaml:"ride"`
	} `yaml:"rates"`
}

type ratesConfig struct {
	table model.RateTable
}

// NewRatesConfigFromYAML reads the rate table from the "rates" section of path.
func NewRatesConfigFromYAML(path string) (config.RatesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseRates(data)
}

func parseRates(data []byte) (config.RatesConfig, error) {
	var f ratesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rates: %w", err)
	}

	table := model.RateTable{
		TierRates:    make(map[model.Tier]decimal.Decimal, len(f.Rates.Tiers)),
		RidePrize:    decimal.NewFromFloat(f.Rates.Ride.Prize),
		RideCost:     decimal.NewFromFloat(f.Rates.Ride.Cost),
		DiscountRate: decimal.NewFromFloat(f.Rates.Discount),
		BaseUnit:     f.Rates.BaseUnit,
	}
	for tier, rate := range f.Rates.Tiers {
		if !model.Tier(tier).Valid() {
			return nil, fmt.Errorf("%w: unknown tier %d", model.ErrInvalidRates, tier)
		}
		table.TierRates[model.Tier(tier)] = decimal.NewFromFloat(rate)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return &ratesConfig{table: table}, nil
}

// RateTable returns a copy, so callers may adjust it per request.
func (cfg *ratesConfig) RateTable() model.RateTable {
	t := cfg.table
	t.TierRates = make(map[model.Tier]decimal.Decimal, len(cfg.table.TierRates))
	for k, v := range cfg.table.TierRates {
		t.TierRates[k] = v
	}
	return t
}
