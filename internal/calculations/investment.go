package calculations

import "math"

// Investment описывает вложение со сложным процентом и регулярными взносами.
// RegularAddition может быть отрицательным: так моделируется регулярное изъятие.
type Investment struct {
	capital         float64
	periodicity     int
	yieldRate       float64
	regularAddition float64
}

// NewInvestment создает инвестицию.
//
// capital - начальная сумма, periodicity - число периодов капитализации в году,
// yieldRate - годовая номинальная доходность (доля), regularAddition - взнос за период.
func NewInvestment(capital float64, periodicity int, yieldRate, regularAddition float64) Investment {
	return Investment{
		capital:         capital,
		periodicity:     periodicity,
		yieldRate:       yieldRate,
		regularAddition: regularAddition,
	}
}

func (i Investment) Capital() float64         { return i.capital }
func (i Investment) Periodicity() int         { return i.periodicity }
func (i Investment) YieldRate() float64       { return i.yieldRate }
func (i Investment) RegularAddition() float64 { return i.regularAddition }

func (i Investment) periodRate() float64 {
	return i.yieldRate / float64(i.periodicity)
}

func (i Investment) capitalPrincipal(n int) float64 {
	return i.capital * math.Pow(1.0+i.periodRate(), float64(n))
}

func (i Investment) capitalAdditions(n int) float64 {
	r := i.periodRate()
	if r == 0.0 {
		return i.regularAddition * float64(n)
	}
	growth := math.Pow(1.0+r, float64(n))
	// ставка ниже точности float64: 1+r == 1, взносы растут линейно
	if growth == 1.0 {
		return i.regularAddition * float64(n)
	}
	return i.regularAddition * ((growth - 1.0) / r)
}

// CapitalAt возвращает капитал после n периодов без округления
func (i Investment) CapitalAt(n int) float64 {
	return i.capitalPrincipal(n) + i.capitalAdditions(n)
}

// AdditionsTotal возвращает сумму регулярных взносов за n периодов
func (i Investment) AdditionsTotal(n int) float64 {
	return i.regularAddition * float64(n)
}
