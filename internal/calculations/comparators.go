package calculations

import "math"

// Periodicity - периодичность кредита и инвестиции при сравнении покупки и аренды.
// Обе стороны сравнения обязаны использовать одну и ту же периодичность.
const Periodicity = 12

// HomeInvest сравнивает покупку жилья в кредит с арендой и инвестированием разницы.
// Ставки и доли задаются долями (0.018 = 1.8%).
type HomeInvest struct {
	Supply                 float64
	Loan                   float64
	LoanRate               float64
	PurchaseCharges        float64
	AnnualCharges          float64
	AnnualAppreciationRate float64
	Rent                   float64
	InvestRate             float64
	Years                  int
}

func (h HomeInvest) newLoan() Loan {
	return NewLoan(h.Years, Periodicity, h.LoanRate, h.Loan)
}

// newInvestment строит альтернативный сценарий: первоначальный взнос инвестируется,
// а каждый период добавляется разница между платежом по кредиту (в целых единицах)
// и арендой. Разница может быть отрицательной.
func (h HomeInvest) newInvestment(loan Loan) Investment {
	return NewInvestment(h.Supply, Periodicity, h.InvestRate, math.Trunc(loan.TermPrice())-h.Rent)
}

// HomeValue возвращает стоимость жилья без расходов на покупку
func (h HomeInvest) HomeValue() float64 {
	return (h.Supply + h.Loan) / (1.0 + h.PurchaseCharges)
}

// MonthlyContribution возвращает взнос за период в сценарии аренды
func (h HomeInvest) MonthlyContribution() float64 {
	return h.newInvestment(h.newLoan()).RegularAddition()
}

// CapitalAt возвращает капитал обоих сценариев на один и тот же период:
// при покупке жилья и при аренде с инвестированием. Результат не округляется.
func (h HomeInvest) CapitalAt(period int) (home float64, invest float64) {
	loan := h.newLoan()
	investment := h.newInvestment(loan)

	totalPaid := h.Supply + h.Loan
	homeValue := totalPaid / (1.0 + h.PurchaseCharges)
	p := float64(period)

	home = h.Supply + loan.CapitalAt(period) -
		(totalPaid - homeValue) -
		(h.AnnualCharges/Periodicity)*homeValue*p +
		homeValue*(h.AnnualAppreciationRate/Periodicity)*p

	return home, investment.CapitalAt(period)
}

// LoanTermPrice возвращает платеж по кредиту на покупку жилья
func (h HomeInvest) LoanTermPrice() float64 {
	return h.newLoan().TermPrice()
}

// BreakEven возвращает первый период в [0; last], на котором капитал при покупке
// не меньше капитала при аренде, или -1, если такого периода нет.
func (h HomeInvest) BreakEven(last int) int {
	for p := 0; p <= last; p++ {
		home, invest := h.CapitalAt(p)
		if home >= invest {
			return p
		}
	}
	return -1
}
