package calculations

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Checkpoints возвращает периоды строк таблицы: first, затем все кратные every
// в интервале (first; last) и last. Повторы не включаются.
func Checkpoints(first, every, last int) []int {
	points := []int{first}
	if every <= 0 {
		if last != first {
			points = append(points, last)
		}
		return points
	}
	for at := every; at < last; at += every {
		if at > first {
			points = append(points, at)
		}
	}
	if last > points[len(points)-1] {
		points = append(points, last)
	}
	return points
}

// buildRows рассчитывает строки параллельно: каждая строка - независимый расчет,
// результат записывается в свою ячейку, поэтому порядок сохраняется.
func buildRows[T any](ctx context.Context, points []int, workers int, row func(at int) T) ([]T, error) {
	rows := make([]T, len(points))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for idx, at := range points {
		idx, at := idx, at
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[idx] = row(at)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoanSchedule рассчитывает таблицу погашения кредита на заданные периоды
func LoanSchedule(ctx context.Context, loan Loan, points []int, workers int) ([]LoanRow, error) {
	return buildRows(ctx, points, workers, func(at int) LoanRow {
		capitalPaid := loan.CapitalAt(at)
		interest := loan.InterestAt(at)

		var overhead float64
		if capitalPaid != 0 {
			overhead = interest / capitalPaid * 100
		}

		return LoanRow{
			Period:                  at,
			Years:                   float64(at) / float64(loan.Period()),
			EndingBalance:           loan.Capital() - capitalPaid,
			CapitalPaid:             capitalPaid,
			TotalInterest:           interest,
			InterestOverheadPercent: overhead,
		}
	})
}

// InvestmentSchedule рассчитывает таблицу роста инвестиции на заданные периоды
func InvestmentSchedule(ctx context.Context, invest Investment, points []int, workers int) ([]InvestmentRow, error) {
	return buildRows(ctx, points, workers, func(at int) InvestmentRow {
		capital := invest.CapitalAt(at)
		additions := invest.AdditionsTotal(at)
		totalInvested := invest.Capital() + additions

		return InvestmentRow{
			Period:         at,
			Years:          float64(at) / float64(invest.Periodicity()),
			TotalAdditions: additions,
			TotalInvested:  totalInvested,
			Capital:        capital,
			InterestEarned: capital - totalInvested,
		}
	})
}

// HomeSchedule рассчитывает сравнение покупки и аренды на заданные периоды
func HomeSchedule(ctx context.Context, h HomeInvest, points []int, workers int) ([]HomeRow, error) {
	return buildRows(ctx, points, workers, func(at int) HomeRow {
		home, invest := h.CapitalAt(at)
		return HomeRow{
			Period:     at,
			Years:      float64(at) / Periodicity,
			Home:       home,
			Invest:     invest,
			Difference: home - invest,
		}
	})
}
