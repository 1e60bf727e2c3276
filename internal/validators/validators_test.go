package validators

import (
	"math"
	"testing"

	"github.com/cloud-ru/homeinvest-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid capital",
			validator: func(cfg *config.Config, v interface{}) error { return CheckCapital(cfg, v.(float64)) },
			value:     90000.0,
			wantError: false,
		},
		{
			name:      "invalid capital zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckCapital(cfg, v.(float64)) },
			value:     0.0,
			wantError: true,
		},
		{
			name:      "invalid capital negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckCapital(cfg, v.(float64)) },
			value:     -1000.0,
			wantError: true,
		},
		{
			name:      "valid zero amount",
			validator: func(cfg *config.Config, v interface{}) error { return CheckAmount(cfg, "rent", v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "invalid amount NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckAmount(cfg, "rent", v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid negative contribution",
			validator: func(cfg *config.Config, v interface{}) error { return CheckContribution(cfg, v.(float64)) },
			value:     -350.0,
			wantError: false,
		},
		{
			name:      "invalid contribution too large",
			validator: func(cfg *config.Config, v interface{}) error { return CheckContribution(cfg, v.(float64)) },
			value:     -1e10,
			wantError: true,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, "interest-rate", v.(float64)) },
			value:     2.9,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, "interest-rate", v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "valid negative appreciation",
			validator: func(cfg *config.Config, v interface{}) error { return CheckSignedRate(cfg, "home-appreciation", v.(float64)) },
			value:     -2.5,
			wantError: false,
		},
		{
			name:      "invalid appreciation below total loss",
			validator: func(cfg *config.Config, v interface{}) error { return CheckSignedRate(cfg, "home-appreciation", v.(float64)) },
			value:     -150.0,
			wantError: true,
		},
		{
			name:      "valid years",
			validator: func(cfg *config.Config, v interface{}) error { return CheckYears(cfg, v.(int)) },
			value:     25,
			wantError: false,
		},
		{
			name:      "invalid years zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckYears(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "invalid periodicity",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPeriodicity(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "valid period zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPeriod(cfg, "n-period", v.(int)) },
			value:     0,
			wantError: false,
		},
		{
			name:      "invalid period negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPeriod(cfg, "n-period", v.(int)) },
			value:     -1,
			wantError: true,
		},
		{
			name:      "invalid step zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckStep(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "valid negative balance",
			validator: func(cfg *config.Config, v interface{}) error { return CheckBalance(cfg, "capital", v.(float64)) },
			value:     -5000.0,
			wantError: false,
		},
		{
			name:      "invalid balance infinite",
			validator: func(cfg *config.Config, v interface{}) error { return CheckBalance(cfg, "capital", v.(float64)) },
			value:     math.Inf(1),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestBalanceCapDefault(t *testing.T) {
	if got := BalanceCap(nil); got != 1e12 {
		t.Errorf("BalanceCap(nil) = %v, want 1e12", got)
	}
}
