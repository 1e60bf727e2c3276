package reports

import (
	"context"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/internal/metrics"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewService(cfg, noop.NewTracerProvider().Tracer("test"), logger)
}

func referenceLoan() LoanParams {
	return LoanParams{Years: 20, Periodicity: 12, InterestRatePercent: 2.9, Capital: 90000}
}

func referenceHome() HomeParams {
	return HomeParams{
		Supply:                 43063,
		Loan:                   344500,
		LoanRatePercent:        1.8,
		PurchaseChargesPercent: 12.5,
		AnnualChargesPercent:   2,
		AppreciationPercent:    2.5,
		Rent:                   1050,
		InvestRatePercent:      4,
		Years:                  25,
	}
}

func TestLoanInfoAt(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name      string
		params    LoanParams
		at        int
		wantError bool
		check     func(*testing.T, *LoanInfo)
	}{
		{
			name:   "reference loan",
			params: referenceLoan(),
			at:     134,
			check: func(t *testing.T, info *LoanInfo) {
				assert.Equal(t, 494.64, info.TermPrice)
				assert.Equal(t, 22487.93, info.InterestPaid)
				assert.InDelta(t, 11.17, info.Years, 0.01)
			},
		},
		{
			name:   "zero rate",
			params: LoanParams{Years: 10, Periodicity: 12, InterestRatePercent: 0, Capital: 120000},
			at:     60,
			check: func(t *testing.T, info *LoanInfo) {
				assert.Equal(t, 1000.0, info.TermPrice)
				assert.Equal(t, 60000.0, info.CapitalPaid)
				assert.Equal(t, 0.0, info.InterestPaid)
			},
		},
		{
			name:      "zero years",
			params:    LoanParams{Years: 0, Periodicity: 12, InterestRatePercent: 2.9, Capital: 90000},
			at:        1,
			wantError: true,
		},
		{
			name:      "negative period",
			params:    referenceLoan(),
			at:        -1,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := s.LoanInfoAt(context.Background(), tt.params, tt.at)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, info)
		})
	}
}

func TestLoanInfoAtMetrics(t *testing.T) {
	s := newTestService(t)
	before := testutil.ToFloat64(metrics.CalculationErrors.WithLabelValues("loan_info_at", "validation"))

	_, err := s.LoanInfoAt(context.Background(), LoanParams{Years: 20, Periodicity: 12, Capital: -1}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capital")

	after := testutil.ToFloat64(metrics.CalculationErrors.WithLabelValues("loan_info_at", "validation"))
	assert.Equal(t, before+1, after)
}

func TestLoanTable(t *testing.T) {
	s := newTestService(t)

	table, err := s.LoanTable(context.Background(), referenceLoan(), 60)
	require.NoError(t, err)

	require.Len(t, table.Rows, 5)
	assert.Equal(t, 1, table.Rows[0].Period)
	assert.Equal(t, 240, table.Rows[4].Period)
	assert.Equal(t, 494.64, table.TermPrice)

	_, err = s.LoanTable(context.Background(), referenceLoan(), 0)
	assert.Error(t, err)
}

func TestLoanRateBelowPrecision(t *testing.T) {
	s := newTestService(t)
	p := LoanParams{Years: 30, Periodicity: 12, InterestRatePercent: 1e-15, Capital: 100000}

	_, err := s.LoanInfoAt(context.Background(), p, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка при выполнении расчета")

	_, err = s.LoanTable(context.Background(), p, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка при выполнении расчета")

	home := referenceHome()
	home.LoanRatePercent = 1e-15
	_, err = s.HomeCompareAt(context.Background(), home, 120)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка при выполнении расчета")
}

func TestInvestInfoAt(t *testing.T) {
	s := newTestService(t)

	info, err := s.InvestInfoAt(context.Background(), InvestParams{
		Capital:      25000,
		Periodicity:  12,
		YieldPercent: 4,
		Addition:     150,
	}, 72)
	require.NoError(t, err)

	assert.InEpsilon(t, 43951.93, info.Capital, 1e-6)
	assert.Equal(t, 10800.0, info.TotalAdditions)
	assert.Equal(t, 35800.0, info.TotalInvested)
	assert.InDelta(t, info.Capital-35800, info.InterestEarned, 1e-9)
	assert.Equal(t, 6.0, info.Years)
}

func TestInvestInfoAtOverflow(t *testing.T) {
	s := newTestService(t)

	_, err := s.InvestInfoAt(context.Background(), InvestParams{
		Capital:      1e8,
		Periodicity:  1,
		YieldPercent: 200,
	}, 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка при выполнении расчета")
}

func TestInvestTable(t *testing.T) {
	s := newTestService(t)

	table, err := s.InvestTable(context.Background(), InvestParams{
		Capital:      25000,
		Periodicity:  12,
		YieldPercent: 4,
		Addition:     150,
	}, 12, 30)
	require.NoError(t, err)

	periods := make([]int, 0, len(table.Rows))
	for _, row := range table.Rows {
		periods = append(periods, row.Period)
	}
	assert.Equal(t, []int{0, 12, 24, 30}, periods)
}

func TestHomeCompareAt(t *testing.T) {
	s := newTestService(t)

	cmp, err := s.HomeCompareAt(context.Background(), referenceHome(), 120)
	require.NoError(t, err)

	assert.InEpsilon(t, 136788.22, cmp.Home, 1e-6)
	assert.InEpsilon(t, 119565.65, cmp.Invest, 1e-6)
	assert.Equal(t, 1426.87, cmp.TermPrice)
	assert.Equal(t, 376.0, cmp.MonthlyContribution)
	assert.InDelta(t, cmp.Home-cmp.Invest, cmp.Difference, 1e-9)
	assert.Equal(t, 10.0, cmp.Years)
}

func TestHomeCompareAtValidation(t *testing.T) {
	s := newTestService(t)

	p := referenceHome()
	p.AppreciationPercent = -3
	_, err := s.HomeCompareAt(context.Background(), p, 120)
	assert.NoError(t, err)

	p = referenceHome()
	p.Rent = -1
	_, err = s.HomeCompareAt(context.Background(), p, 120)
	assert.Error(t, err)

	p = referenceHome()
	p.Years = 0
	_, err = s.HomeCompareAt(context.Background(), p, 120)
	assert.Error(t, err)
}

func TestHomeTable(t *testing.T) {
	s := newTestService(t)

	table, err := s.HomeTable(context.Background(), referenceHome(), 60, 0)
	require.NoError(t, err)

	require.Len(t, table.Rows, 6)
	assert.Equal(t, 300, table.Rows[5].Period)
	assert.Equal(t, NewHomeInvest(referenceHome()).BreakEven(300), table.BreakEven)
	assert.GreaterOrEqual(t, table.BreakEven, 0)
}

func TestNewHomeInvest(t *testing.T) {
	h := NewHomeInvest(referenceHome())

	assert.InDelta(t, 0.018, h.LoanRate, 1e-15)
	assert.InDelta(t, 0.125, h.PurchaseCharges, 1e-15)
	assert.InDelta(t, 0.025, h.AnnualAppreciationRate, 1e-15)
	assert.Equal(t, 25, h.Years)
}
