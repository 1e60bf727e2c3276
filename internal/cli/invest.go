package cli

import (
	"github.com/spf13/cobra"

	"github.com/cloud-ru/homeinvest-go/internal/render"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
)

func (a *App) investCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invest",
		Short: "Compounding investment with regular additions",
	}
	cmd.AddCommand(a.investInfoAtCommand(), a.investTableCommand())
	return cmd
}

func bindInvestFlags(cmd *cobra.Command, p *reports.InvestParams) {
	f := cmd.Flags()
	f.IntVarP(&p.Periodicity, "period", "p", 0, "periodicity of the investment (by year)")
	f.Float64VarP(&p.YieldPercent, "yield", "r", 0, "yearly yield rate in percent")
	f.Float64VarP(&p.Capital, "capital", "c", 0, "initial capital")
	f.Float64VarP(&p.Addition, "addition", "a", 0, "regular addition for each period")
	markRequired(cmd, "period", "yield", "capital")
}

func (a *App) investInfoAtCommand() *cobra.Command {
	var p reports.InvestParams

	cmd := &cobra.Command{
		Use:   "info-at N-PERIODS",
		Short: "Compute investment info for a point in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePeriodArg("n-periods", args[0])
			if err != nil {
				return err
			}

			info, err := a.service.InvestInfoAt(cmd.Context(), p, at)
			if err != nil {
				return err
			}
			return a.print(cmd, render.InvestInfoDocument(info))
		},
	}
	bindInvestFlags(cmd, &p)

	return cmd
}

func (a *App) investTableCommand() *cobra.Command {
	var (
		p       reports.InvestParams
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "table EVERY-PERIOD TO",
		Short: "Print the investment growth every n periods up to a period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			every, err := parsePeriodArg("every-period", args[0])
			if err != nil {
				return err
			}
			to, err := parsePeriodArg("to", args[1])
			if err != nil {
				return err
			}

			table, err := a.service.InvestTable(cmd.Context(), p, every, to)
			if err != nil {
				return err
			}

			doc := render.InvestTableDocument(table)
			if err := a.print(cmd, doc); err != nil {
				return err
			}
			return a.export(pdfPath, doc)
		},
	}
	bindInvestFlags(cmd, &p)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also save the table to a PDF file")

	return cmd
}
