package render

import (
	"fmt"

	"github.com/cloud-ru/homeinvest-go/internal/calculations"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
)

const none = "NONE"

var infoHeader = []string{"title", "at (periods)", "at (~years)", "value"}

func loanTitle(p reports.LoanParams) string {
	return fmt.Sprintf("Information for a loan of %s during %d years with period of %d at %s",
		Amount(p.Capital), p.Years, p.Periodicity, Rate(p.InterestRatePercent))
}

func investTitle(p reports.InvestParams) string {
	return fmt.Sprintf("For an investment of %s and regular additions of %s per period at an interest rate of %s per year",
		Amount(p.Capital), Amount(p.Addition), Rate(p.YieldPercent))
}

func homeTitle(p reports.HomeParams) string {
	return fmt.Sprintf("For a supply of %s, a loan of %s on %d years with a rate of %s, "+
		"purchase charges of %s, annual charges of %s and a home appreciation of %s by year, "+
		"compared to a rent of %s and an investment interest rate at %s",
		Amount(p.Supply), Amount(p.Loan), p.Years, Rate(p.LoanRatePercent),
		Rate(p.PurchaseChargesPercent), Rate(p.AnnualChargesPercent), Rate(p.AppreciationPercent),
		Amount(p.Rent), Rate(p.InvestRatePercent))
}

// LoanInfoDocument готовит сводку по кредиту к выводу
func LoanInfoDocument(info *reports.LoanInfo) Document {
	at, years := Period(info.At), Years(info.Years)
	return Document{
		Title:  loanTitle(info.Params),
		Header: infoHeader,
		Rows: [][]string{
			{"term price", none, none, Amount(info.TermPrice)},
			{"capital paid", at, years, Amount(info.CapitalPaid)},
			{"paid", at, years, Amount(info.Paid)},
			{"interest paid", at, years, Amount(info.InterestPaid)},
		},
		Payload: info,
	}
}

// LoanTableDocument готовит таблицу погашения кредита к выводу
func LoanTableDocument(table *reports.LoanTable) Document {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []string{
			Period(row.Period),
			Years(row.Years),
			Amount(row.EndingBalance),
			Amount(row.CapitalPaid),
			Amount(row.TotalInterest),
			Percent(row.InterestOverheadPercent),
		})
	}
	return Document{
		Title:   loanTitle(table.Params),
		Header:  []string{"At (periods)", "At (~years)", "Ending balance", "Capital paid", "Total interest", "~Interest overhead ratio"},
		Rows:    rows,
		Footer:  "term price: " + Amount(table.TermPrice),
		Payload: table,
	}
}

// InvestInfoDocument готовит сводку по инвестиции к выводу
func InvestInfoDocument(info *reports.InvestInfo) Document {
	at, years := Period(info.At), Years(info.Years)
	return Document{
		Title:  investTitle(info.Params),
		Header: infoHeader,
		Rows: [][]string{
			{"total additions", none, none, Amount(info.TotalAdditions)},
			{"total investment", none, none, Amount(info.TotalInvested)},
			{"capital", at, years, Amount(info.Capital)},
			{"interest earned", at, years, Amount(info.InterestEarned)},
		},
		Payload: info,
	}
}

// InvestTableDocument готовит таблицу роста инвестиции к выводу
func InvestTableDocument(table *reports.InvestTable) Document {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []string{
			Period(row.Period),
			Years(row.Years),
			Amount(row.TotalAdditions),
			Amount(row.TotalInvested),
			Amount(row.Capital),
			Amount(row.InterestEarned),
		})
	}
	return Document{
		Title:   investTitle(table.Params),
		Header:  []string{"At (periods)", "At (~years)", "Total additions", "Total invest", "Capital", "Interest earned"},
		Rows:    rows,
		Payload: table,
	}
}

// HomeComparisonDocument готовит сравнение покупки и аренды к выводу
func HomeComparisonDocument(cmp *reports.HomeComparison) Document {
	at, years := Period(cmp.At), Years(cmp.Years)
	return Document{
		Title:  homeTitle(cmp.Params),
		Header: infoHeader,
		Rows: [][]string{
			{"term price for home purchase", none, none, Amount(cmp.TermPrice)},
			{"monthly addition when renting", none, none, Amount(cmp.MonthlyContribution)},
			{"capital for home purchase", at, years, Amount(cmp.Home)},
			{"capital for renting", at, years, Amount(cmp.Invest)},
			{"difference for home purchase", at, years, Amount(cmp.Difference)},
		},
		Payload: cmp,
	}
}

// HomeTableDocument готовит сравнение покупки и аренды по периодам к выводу
func HomeTableDocument(table *reports.HomeTable) Document {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []string{
			Period(row.Period),
			Years(row.Years),
			Amount(row.Home),
			Amount(row.Invest),
			Amount(row.Difference),
		})
	}

	breakEven := "home purchase never catches up with renting in this range"
	if table.BreakEven >= 0 {
		breakEven = fmt.Sprintf("home purchase catches up with renting at period %d (~%s years)",
			table.BreakEven, Years(float64(table.BreakEven)/calculations.Periodicity))
	}

	return Document{
		Title:   homeTitle(table.Params),
		Header:  []string{"At (periods)", "At (~years)", "Home purchase", "Renting", "Difference"},
		Rows:    rows,
		Footer:  fmt.Sprintf("term price: %s, monthly addition when renting: %s\n%s", Amount(table.TermPrice), Amount(table.MonthlyContribution), breakEven),
		Payload: table,
	}
}
