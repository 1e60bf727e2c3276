package reports

import "github.com/cloud-ru/homeinvest-go/internal/calculations"

// LoanParams параметры кредита в единицах командной строки (ставка в процентах)
type LoanParams struct {
	Years               int     `json:"years"`
	Periodicity         int     `json:"periodicity"`
	InterestRatePercent float64 `json:"interest_rate_percent"`
	Capital             float64 `json:"capital"`
}

// InvestParams параметры инвестиции (доходность в процентах)
type InvestParams struct {
	Capital      float64 `json:"capital"`
	Periodicity  int     `json:"periodicity"`
	YieldPercent float64 `json:"yield_percent"`
	Addition     float64 `json:"addition"`
}

// HomeParams параметры сравнения покупки жилья и аренды (ставки в процентах)
type HomeParams struct {
	Supply                 float64 `json:"supply"`
	Loan                   float64 `json:"loan"`
	LoanRatePercent        float64 `json:"loan_rate_percent"`
	PurchaseChargesPercent float64 `json:"purchase_charges_percent"`
	AnnualChargesPercent   float64 `json:"annual_charges_percent"`
	AppreciationPercent    float64 `json:"appreciation_percent"`
	Rent                   float64 `json:"rent"`
	InvestRatePercent      float64 `json:"invest_rate_percent"`
	Years                  int     `json:"years"`
}

// LoanInfo сводка по кредиту на заданный период
type LoanInfo struct {
	Params       LoanParams `json:"params"`
	At           int        `json:"at"`
	Years        float64    `json:"years"`
	TermPrice    float64    `json:"term_price"`
	CapitalPaid  float64    `json:"capital_paid"`
	Paid         float64    `json:"paid"`
	InterestPaid float64    `json:"interest_paid"`
}

// LoanTable таблица погашения кредита
type LoanTable struct {
	Params    LoanParams             `json:"params"`
	TermPrice float64                `json:"term_price"`
	Rows      []calculations.LoanRow `json:"rows"`
}

// InvestInfo сводка по инвестиции на заданный период
type InvestInfo struct {
	Params         InvestParams `json:"params"`
	At             int          `json:"at"`
	Years          float64      `json:"years"`
	TotalAdditions float64      `json:"total_additions"`
	TotalInvested  float64      `json:"total_invested"`
	Capital        float64      `json:"capital"`
	InterestEarned float64      `json:"interest_earned"`
}

// InvestTable таблица роста инвестиции
type InvestTable struct {
	Params InvestParams                 `json:"params"`
	Rows   []calculations.InvestmentRow `json:"rows"`
}

// HomeComparison сравнение покупки и аренды на заданный период
type HomeComparison struct {
	Params              HomeParams `json:"params"`
	At                  int        `json:"at"`
	Years               float64    `json:"years"`
	TermPrice           float64    `json:"term_price"`
	MonthlyContribution float64    `json:"monthly_contribution"`
	Home                float64    `json:"home"`
	Invest              float64    `json:"invest"`
	Difference          float64    `json:"difference"`
}

// HomeTable сравнение покупки и аренды по периодам
type HomeTable struct {
	Params              HomeParams             `json:"params"`
	TermPrice           float64                `json:"term_price"`
	MonthlyContribution float64                `json:"monthly_contribution"`
	BreakEven           int                    `json:"break_even"`
	Rows                []calculations.HomeRow `json:"rows"`
}
