package validators

import (
	"fmt"

	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckCapital проверяет сумму кредита
func CheckCapital(cfg *config.Config, capital float64) error {
	return ValidatePositiveNumber("capital", capital, 1e-9, cfg.MaxCapital)
}

// CheckAmount проверяет неотрицательную сумму (взнос, аренда, начальный капитал)
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxCapital)
}

// CheckContribution проверяет взнос за период: отрицательный взнос означает изъятие
func CheckContribution(cfg *config.Config, contribution float64) error {
	return ValidatePositiveNumber("addition", contribution, -cfg.MaxCapital, cfg.MaxCapital)
}

// CheckRate проверяет ставку в процентах
func CheckRate(cfg *config.Config, name string, ratePercent float64) error {
	return ValidatePositiveNumber(name, ratePercent, 0.0, cfg.MaxRate)
}

// CheckSignedRate проверяет ставку, которая может быть отрицательной (удорожание жилья)
func CheckSignedRate(cfg *config.Config, name string, ratePercent float64) error {
	return ValidatePositiveNumber(name, ratePercent, -100.0, cfg.MaxRate)
}

// CheckYears проверяет срок в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("years", years, 1, cfg.MaxYears)
}

// CheckPeriodicity проверяет число периодов в году
func CheckPeriodicity(cfg *config.Config, periodicity int) error {
	return ValidateIntRange("periodicity", periodicity, 1, cfg.MaxPeriodicity)
}

// CheckPeriod проверяет номер периода
func CheckPeriod(cfg *config.Config, name string, period int) error {
	return ValidateIntRange(name, period, 0, cfg.MaxPeriods)
}

// CheckStep проверяет шаг таблицы
func CheckStep(cfg *config.Config, every int) error {
	return ValidateIntRange("every-period", every, 1, cfg.MaxPeriods)
}

// CheckBalance проверяет, что рассчитанный капитал конечен и не превышает верхнюю границу
func CheckBalance(cfg *config.Config, name string, balance float64) error {
	limit := BalanceCap(cfg)
	return ValidatePositiveNumber(name, balance, -limit, limit)
}

// BalanceCap возвращает максимальный капитал
func BalanceCap(cfg *config.Config) float64 {
	if cfg == nil {
		return 1e12 // Значение по умолчанию
	}
	return cfg.BalanceCap()
}
