package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1e9, cfg.MaxCapital)
	assert.Equal(t, 50, cfg.MaxYears)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "homeinvest", cfg.OTELServiceName)
	assert.Equal(t, 1e12, cfg.BalanceCap())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MAX_YEARS", "30")
	t.Setenv("MAX_RATE", "25.5")
	t.Setenv("WORKERS", "not-a-number")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.MaxYears)
	assert.Equal(t, 25.5, cfg.MaxRate)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadHomeScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.yaml")
	content := `supply: 43063
loan: 344500
loan_rate: 1.8
purchase_charges: 12.5
years: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	scenario, err := LoadHomeScenario(path)
	require.NoError(t, err)

	require.NotNil(t, scenario.Supply)
	assert.Equal(t, 43063.0, *scenario.Supply)
	assert.Equal(t, 1.8, *scenario.LoanRate)
	assert.Equal(t, 25, *scenario.Years)
	assert.Nil(t, scenario.Rent)
}

func TestLoadHomeScenarioErrors(t *testing.T) {
	_, err := LoadHomeScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("supply: [1, 2"), 0o600))
	_, err = LoadHomeScenario(path)
	assert.Error(t, err)
}
