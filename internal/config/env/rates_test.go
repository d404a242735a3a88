package env

import (
	"lotto_backend/internal/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesYAML = `
rates:
  base_unit: 10
  discount: 0.78
  tiers:
    2: 530
    3: 5700
    4: 800000
  ride:
    prize: 2120
    cost: 304
`

func TestNewRatesConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ratesYAML), 0o600))

	cfg, err := NewRatesConfigFromYAML(path)
	require.NoError(t, err)

	table := cfg.RateTable()
	assert.Equal(t, int64(10), table.BaseUnit)
	assert.True(t, decimal.RequireFromString("0.78").Equal(table.DiscountRate))
	assert.True(t, decimal.NewFromInt(800000).Equal(table.Rate(model.Tier4)))
	assert.True(t, decimal.NewFromInt(2120).Equal(table.RidePrize))
	assert.True(t, decimal.NewFromInt(304).Equal(table.RideCost))

	table.TierRates[model.Tier2] = decimal.Zero
	assert.True(t, decimal.NewFromInt(530).Equal(cfg.RateTable().Rate(model.Tier2)), "copy is independent")
}

func TestParseRatesRejectsIncompleteTable(t *testing.T) {
	_, err := parseRates([]byte("rates:\n  base_unit: 10\n  discount: 0.78\n  tiers:\n    2: 530\n"))
	require.ErrorIs(t, err, model.ErrInvalidRates)

	_, err = parseRates([]byte("rates:\n  base_unit: 10\n  discount: 0.78\n  tiers:\n    5: 1\n"))
	require.ErrorIs(t, err, model.ErrInvalidRates)
}

func TestNewJWTConfigDefaults(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "")
	t.Setenv(refreshTokenDurationEnvName, "1h")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultAccessTokenDuration, cfg.AccessTokenDuration())
	assert.Equal(t, "1h0m0s", cfg.RefreshTokenDuration().String())
	assert.Equal(t, []byte("secret"), cfg.AccessTokenSecretKey())
}
