package cli

import (
	"github.com/spf13/cobra"

	"github.com/cloud-ru/homeinvest-go/internal/render"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
)

func (a *App) loanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Loan with constant installments",
	}
	cmd.AddCommand(a.loanInfoAtCommand(), a.loanTableCommand())
	return cmd
}

func bindLoanFlags(cmd *cobra.Command, p *reports.LoanParams) {
	f := cmd.Flags()
	f.IntVarP(&p.Years, "years", "y", 0, "number of years for the loan")
	f.IntVarP(&p.Periodicity, "periodicity", "p", 0, "periodicity for the loan (by year)")
	f.Float64VarP(&p.InterestRatePercent, "interest-rate", "i", 0, "interest rate for the loan in percent")
	f.Float64VarP(&p.Capital, "capital", "c", 0, "capital to borrow")
	markRequired(cmd, "years", "periodicity", "interest-rate", "capital")
}

func (a *App) loanInfoAtCommand() *cobra.Command {
	var p reports.LoanParams

	cmd := &cobra.Command{
		Use:   "info-at N-PERIOD",
		Short: "Compute loan info for a point in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePeriodArg("n-period", args[0])
			if err != nil {
				return err
			}

			info, err := a.service.LoanInfoAt(cmd.Context(), p, at)
			if err != nil {
				return err
			}
			return a.print(cmd, render.LoanInfoDocument(info))
		},
	}
	bindLoanFlags(cmd, &p)

	return cmd
}

func (a *App) loanTableCommand() *cobra.Command {
	var (
		p       reports.LoanParams
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "table EVERY-PERIOD",
		Short: "Print the loan amortization every n periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			every, err := parsePeriodArg("every-period", args[0])
			if err != nil {
				return err
			}

			table, err := a.service.LoanTable(cmd.Context(), p, every)
			if err != nil {
				return err
			}

			doc := render.LoanTableDocument(table)
			if err := a.print(cmd, doc); err != nil {
				return err
			}
			return a.export(pdfPath, doc)
		},
	}
	bindLoanFlags(cmd, &p)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also save the table to a PDF file")

	return cmd
}
