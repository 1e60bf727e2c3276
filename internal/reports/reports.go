package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/homeinvest-go/internal/calculations"
	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/internal/metrics"
	"github.com/cloud-ru/homeinvest-go/internal/validators"
	"github.com/cloud-ru/homeinvest-go/pkg/utils"
)

const (
	errorKindValidation  = "validation"
	errorKindCalculation = "calculation"
)

// Service строит отчеты: валидирует параметры, вызывает расчеты,
// пишет спаны и метрики.
type Service struct {
	cfg    *config.Config
	tracer trace.Tracer
	logger logrus.FieldLogger
}

// NewService создает сервис отчетов
func NewService(cfg *config.Config, tracer trace.Tracer, logger logrus.FieldLogger) *Service {
	return &Service{cfg: cfg, tracer: tracer, logger: logger}
}

func (s *Service) start(ctx context.Context, report string, attrs ...attribute.KeyValue) (context.Context, trace.Span, func()) {
	ctx, span := s.tracer.Start(ctx, report)
	span.SetAttributes(attrs...)

	started := time.Now()
	return ctx, span, func() {
		metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())
		span.End()
	}
}

func (s *Service) fail(span trace.Span, report, kind string, err error) error {
	span.SetAttributes(attribute.String("error", kind+"_error"))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	metrics.ReportCalls.WithLabelValues(report, kind+"_error").Inc()
	metrics.CalculationErrors.WithLabelValues(report, kind).Inc()

	s.logger.WithFields(logrus.Fields{
		"report":     report,
		"error_type": kind,
	}).WithError(err).Warn("report failed")

	if kind == errorKindValidation {
		return fmt.Errorf("неверные параметры: %w", err)
	}
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

func (s *Service) succeed(span trace.Span, report string, fields logrus.Fields) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ReportCalls.WithLabelValues(report, "success").Inc()
	fields["report"] = report
	s.logger.WithFields(fields).Debug("report built")
}

func loanAttributes(p LoanParams) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("years", p.Years),
		attribute.Int("periodicity", p.Periodicity),
		attribute.Float64("interest_rate_percent", p.InterestRatePercent),
		attribute.Float64("capital", p.Capital),
	}
}

func investAttributes(p InvestParams) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("capital", p.Capital),
		attribute.Int("periodicity", p.Periodicity),
		attribute.Float64("yield_percent", p.YieldPercent),
		attribute.Float64("addition", p.Addition),
	}
}

func homeAttributes(p HomeParams) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("supply", p.Supply),
		attribute.Float64("loan", p.Loan),
		attribute.Float64("loan_rate_percent", p.LoanRatePercent),
		attribute.Float64("purchase_charges_percent", p.PurchaseChargesPercent),
		attribute.Float64("annual_charges_percent", p.AnnualChargesPercent),
		attribute.Float64("appreciation_percent", p.AppreciationPercent),
		attribute.Float64("rent", p.Rent),
		attribute.Float64("invest_rate_percent", p.InvestRatePercent),
		attribute.Int("years", p.Years),
	}
}

func (s *Service) validateLoan(p LoanParams) error {
	if err := validators.CheckYears(s.cfg, p.Years); err != nil {
		return err
	}
	if err := validators.CheckPeriodicity(s.cfg, p.Periodicity); err != nil {
		return err
	}
	if err := validators.CheckPeriod(s.cfg, "periods", p.Years*p.Periodicity); err != nil {
		return err
	}
	if err := validators.CheckRate(s.cfg, "interest-rate", p.InterestRatePercent); err != nil {
		return err
	}
	return validators.CheckCapital(s.cfg, p.Capital)
}

func (s *Service) validateInvest(p InvestParams) error {
	if err := validators.CheckAmount(s.cfg, "capital", p.Capital); err != nil {
		return err
	}
	if err := validators.CheckPeriodicity(s.cfg, p.Periodicity); err != nil {
		return err
	}
	if err := validators.CheckSignedRate(s.cfg, "yield", p.YieldPercent); err != nil {
		return err
	}
	return validators.CheckContribution(s.cfg, p.Addition)
}

func (s *Service) validateHome(p HomeParams) error {
	checks := []error{
		validators.CheckAmount(s.cfg, "supply", p.Supply),
		validators.CheckCapital(s.cfg, p.Loan),
		validators.CheckRate(s.cfg, "loan-rate", p.LoanRatePercent),
		validators.CheckRate(s.cfg, "purchase-charges", p.PurchaseChargesPercent),
		validators.CheckRate(s.cfg, "annual-charges", p.AnnualChargesPercent),
		validators.CheckSignedRate(s.cfg, "home-appreciation", p.AppreciationPercent),
		validators.CheckAmount(s.cfg, "rent", p.Rent),
		validators.CheckSignedRate(s.cfg, "invest-rate", p.InvestRatePercent),
		validators.CheckYears(s.cfg, p.Years),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

type balance struct {
	name  string
	value float64
}

// checkBalances отсекает бесконечные и слишком большие результаты расчета
func (s *Service) checkBalances(values ...balance) error {
	for _, v := range values {
		if err := validators.CheckBalance(s.cfg, v.name, v.value); err != nil {
			return err
		}
	}
	return nil
}

func newLoan(p LoanParams) calculations.Loan {
	return calculations.NewLoan(p.Years, p.Periodicity, utils.FromPercent(p.InterestRatePercent), p.Capital)
}

func newInvestment(p InvestParams) calculations.Investment {
	return calculations.NewInvestment(p.Capital, p.Periodicity, utils.FromPercent(p.YieldPercent), p.Addition)
}

// NewHomeInvest переводит параметры командной строки в сравнение покупки и аренды
func NewHomeInvest(p HomeParams) calculations.HomeInvest {
	return calculations.HomeInvest{
		Supply:                 p.Supply,
		Loan:                   p.Loan,
		LoanRate:               utils.FromPercent(p.LoanRatePercent),
		PurchaseCharges:        utils.FromPercent(p.PurchaseChargesPercent),
		AnnualCharges:          utils.FromPercent(p.AnnualChargesPercent),
		AnnualAppreciationRate: utils.FromPercent(p.AppreciationPercent),
		Rent:                   p.Rent,
		InvestRate:             utils.FromPercent(p.InvestRatePercent),
		Years:                  p.Years,
	}
}

// LoanInfoAt строит сводку по кредиту на период at
func (s *Service) LoanInfoAt(ctx context.Context, p LoanParams, at int) (*LoanInfo, error) {
	report := "loan_info_at"

	_, span, done := s.start(ctx, report, append(loanAttributes(p), attribute.Int("at", at))...)
	defer done()

	if err := s.validateLoan(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckPeriod(s.cfg, "n-period", at); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	loan := newLoan(p)
	result := &LoanInfo{
		Params:       p,
		At:           at,
		Years:        float64(at) / float64(p.Periodicity),
		TermPrice:    loan.TermPrice(),
		CapitalPaid:  loan.CapitalAt(at),
		Paid:         loan.Paid(at),
		InterestPaid: loan.InterestAt(at),
	}
	if err := s.checkBalances(
		balance{"term_price", result.TermPrice},
		balance{"capital_paid", result.CapitalPaid},
		balance{"paid", result.Paid},
		balance{"interest_paid", result.InterestPaid},
	); err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}

	span.SetAttributes(attribute.Float64("term_price", result.TermPrice))
	s.succeed(span, report, logrus.Fields{"term_price": result.TermPrice, "at": at})

	return result, nil
}

// LoanTable строит таблицу погашения кредита с шагом every периодов
func (s *Service) LoanTable(ctx context.Context, p LoanParams, every int) (*LoanTable, error) {
	report := "loan_table"

	ctx, span, done := s.start(ctx, report, append(loanAttributes(p), attribute.Int("every", every))...)
	defer done()

	if err := s.validateLoan(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckStep(s.cfg, every); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	loan := newLoan(p)
	points := calculations.Checkpoints(1, every, loan.Periods())
	rows, err := calculations.LoanSchedule(ctx, loan, points, s.cfg.Workers)
	if err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}
	if err := s.checkBalances(balance{"term_price", loan.TermPrice()}); err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}
	for _, row := range rows {
		if err := s.checkBalances(
			balance{"ending_balance", row.EndingBalance},
			balance{"capital_paid", row.CapitalPaid},
			balance{"total_interest", row.TotalInterest},
		); err != nil {
			return nil, s.fail(span, report, errorKindCalculation, err)
		}
	}

	metrics.SeriesRows.WithLabelValues(report).Set(float64(len(rows)))
	s.succeed(span, report, logrus.Fields{"rows": len(rows)})

	return &LoanTable{
		Params:    p,
		TermPrice: loan.TermPrice(),
		Rows:      rows,
	}, nil
}

// InvestInfoAt строит сводку по инвестиции на период at
func (s *Service) InvestInfoAt(ctx context.Context, p InvestParams, at int) (*InvestInfo, error) {
	report := "invest_info_at"

	_, span, done := s.start(ctx, report, append(investAttributes(p), attribute.Int("at", at))...)
	defer done()

	if err := s.validateInvest(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckPeriod(s.cfg, "n-periods", at); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	invest := newInvestment(p)
	capital := invest.CapitalAt(at)
	if err := validators.CheckBalance(s.cfg, "capital", capital); err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}

	additions := invest.AdditionsTotal(at)
	totalInvested := p.Capital + additions

	s.succeed(span, report, logrus.Fields{"capital": capital, "at": at})

	return &InvestInfo{
		Params:         p,
		At:             at,
		Years:          float64(at) / float64(p.Periodicity),
		TotalAdditions: additions,
		TotalInvested:  totalInvested,
		Capital:        capital,
		InterestEarned: capital - totalInvested,
	}, nil
}

// InvestTable строит таблицу роста инвестиции с шагом every до периода to
func (s *Service) InvestTable(ctx context.Context, p InvestParams, every, to int) (*InvestTable, error) {
	report := "invest_table"

	ctx, span, done := s.start(ctx, report, append(investAttributes(p),
		attribute.Int("every", every),
		attribute.Int("to", to),
	)...)
	defer done()

	if err := s.validateInvest(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckStep(s.cfg, every); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckPeriod(s.cfg, "to", to); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	invest := newInvestment(p)
	rows, err := calculations.InvestmentSchedule(ctx, invest, calculations.Checkpoints(0, every, to), s.cfg.Workers)
	if err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}
	for _, row := range rows {
		if err := validators.CheckBalance(s.cfg, "capital", row.Capital); err != nil {
			return nil, s.fail(span, report, errorKindCalculation, err)
		}
	}

	metrics.SeriesRows.WithLabelValues(report).Set(float64(len(rows)))
	s.succeed(span, report, logrus.Fields{"rows": len(rows)})

	return &InvestTable{Params: p, Rows: rows}, nil
}

// HomeCompareAt сравнивает покупку и аренду на период at
func (s *Service) HomeCompareAt(ctx context.Context, p HomeParams, at int) (*HomeComparison, error) {
	report := "home_compare_at"

	_, span, done := s.start(ctx, report, append(homeAttributes(p), attribute.Int("at", at))...)
	defer done()

	if err := s.validateHome(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckPeriod(s.cfg, "n-periods", at); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	h := NewHomeInvest(p)
	home, invest := h.CapitalAt(at)
	if err := s.checkBalances(balance{"home", home}, balance{"invest", invest}); err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}

	span.SetAttributes(
		attribute.Float64("home", home),
		attribute.Float64("invest", invest),
	)
	s.succeed(span, report, logrus.Fields{"home": home, "invest": invest, "at": at})

	return &HomeComparison{
		Params:              p,
		At:                  at,
		Years:               float64(at) / calculations.Periodicity,
		TermPrice:           h.LoanTermPrice(),
		MonthlyContribution: h.MonthlyContribution(),
		Home:                home,
		Invest:              invest,
		Difference:          home - invest,
	}, nil
}

// HomeTable сравнивает покупку и аренду с шагом every до периода to.
// При to = 0 таблица строится на весь срок кредита.
func (s *Service) HomeTable(ctx context.Context, p HomeParams, every, to int) (*HomeTable, error) {
	report := "home_table"

	if to == 0 {
		to = p.Years * calculations.Periodicity
	}

	ctx, span, done := s.start(ctx, report, append(homeAttributes(p),
		attribute.Int("every", every),
		attribute.Int("to", to),
	)...)
	defer done()

	if err := s.validateHome(p); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckStep(s.cfg, every); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}
	if err := validators.CheckPeriod(s.cfg, "to", to); err != nil {
		return nil, s.fail(span, report, errorKindValidation, err)
	}

	h := NewHomeInvest(p)
	rows, err := calculations.HomeSchedule(ctx, h, calculations.Checkpoints(0, every, to), s.cfg.Workers)
	if err != nil {
		return nil, s.fail(span, report, errorKindCalculation, err)
	}
	for _, row := range rows {
		if err := s.checkBalances(balance{"home", row.Home}, balance{"invest", row.Invest}); err != nil {
			return nil, s.fail(span, report, errorKindCalculation, err)
		}
	}

	breakEven := h.BreakEven(to)
	span.SetAttributes(attribute.Int("break_even", breakEven))
	metrics.SeriesRows.WithLabelValues(report).Set(float64(len(rows)))
	s.succeed(span, report, logrus.Fields{"rows": len(rows), "break_even": breakEven})

	return &HomeTable{
		Params:              p,
		TermPrice:           h.LoanTermPrice(),
		MonthlyContribution: h.MonthlyContribution(),
		BreakEven:           breakEven,
		Rows:                rows,
	}, nil
}
