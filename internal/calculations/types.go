package calculations

// LoanRow представляет одну строку таблицы погашения кредита
type LoanRow struct {
	Period                  int     `json:"period"`
	Years                   float64 `json:"years"`
	EndingBalance           float64 `json:"ending_balance"`
	CapitalPaid             float64 `json:"capital_paid"`
	TotalInterest           float64 `json:"total_interest"`
	InterestOverheadPercent float64 `json:"interest_overhead_percent"`
}

// InvestmentRow представляет одну строку таблицы роста инвестиции
type InvestmentRow struct {
	Period         int     `json:"period"`
	Years          float64 `json:"years"`
	TotalAdditions float64 `json:"total_additions"`
	TotalInvested  float64 `json:"total_invested"`
	Capital        float64 `json:"capital"`
	InterestEarned float64 `json:"interest_earned"`
}

// HomeRow представляет одну строку сравнения покупки и аренды
type HomeRow struct {
	Period     int     `json:"period"`
	Years      float64 `json:"years"`
	Home       float64 `json:"home"`
	Invest     float64 `json:"invest"`
	Difference float64 `json:"difference"`
}
