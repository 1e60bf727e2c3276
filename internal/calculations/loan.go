package calculations

import (
	"math"

	"github.com/cloud-ru/homeinvest-go/pkg/utils"
)

// Loan описывает аннуитетный кредит с фиксированным платежом.
// Значение неизменяемо: платеж рассчитывается один раз в NewLoan.
type Loan struct {
	years            int
	period           int
	interestRateYear float64
	capital          float64
	termPrice        float64
}

// NewLoan создает кредит.
//
// years - срок в годах, period - число платежей в году,
// interestRateYear - годовая номинальная ставка (доля, не процент),
// capital - сумма кредита.
func NewLoan(years, period int, interestRateYear, capital float64) Loan {
	return Loan{
		years:            years,
		period:           period,
		interestRateYear: interestRateYear,
		capital:          capital,
		termPrice:        computeTermPrice(capital, interestRateYear, years, period),
	}
}

func computeTermPrice(capital, interestRateYear float64, years, period int) float64 {
	n := float64(years * period)
	r := interestRateYear / float64(period)

	var termPrice float64
	if r == 0.0 {
		termPrice = capital / n
	} else {
		termPrice = capital * r / (1.0 - math.Pow(1.0+r, -n))
	}
	return utils.Round2(termPrice)
}

func (l Loan) Years() int                { return l.years }
func (l Loan) Period() int               { return l.period }
func (l Loan) InterestRateYear() float64 { return l.interestRateYear }
func (l Loan) Capital() float64          { return l.capital }

// Periods возвращает общее число платежей
func (l Loan) Periods() int {
	return l.years * l.period
}

// TermPrice возвращает фиксированный платеж за период
func (l Loan) TermPrice() float64 {
	return l.termPrice
}

// CapitalAt возвращает основной долг, погашенный после n платежей
// (а не остаток долга). CapitalAt(0) = 0, CapitalAt(Periods()) = Capital().
func (l Loan) CapitalAt(n int) float64 {
	r := l.interestRateYear / float64(l.period)
	total := float64(l.Periods())

	var fraction float64
	if r == 0.0 {
		fraction = float64(n) / total
	} else {
		fraction = (math.Pow(1.0+r, float64(n)) - 1.0) / (math.Pow(1.0+r, total) - 1.0)
	}
	return utils.Round2(fraction * l.capital)
}

// Paid возвращает сумму всех платежей после n периодов
func (l Loan) Paid(n int) float64 {
	return utils.Round2(l.termPrice * float64(n))
}

// InterestAt возвращает проценты, уплаченные после n периодов.
// Вычитаются уже округленные Paid и CapitalAt, затем результат округляется еще раз.
func (l Loan) InterestAt(n int) float64 {
	return utils.Round2(l.Paid(n) - l.CapitalAt(n))
}
