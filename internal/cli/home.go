package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/internal/render"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
)

var homeFlagNames = []string{
	"supply",
	"loan",
	"loan-rate",
	"purchase-charges",
	"annual-charges",
	"home-appreciation",
	"rent",
	"invest-rate",
	"years",
}

// homeFlags параметры сравнения из флагов и, при наличии, из YAML сценария
type homeFlags struct {
	params   reports.HomeParams
	scenario string
}

func (h *homeFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64VarP(&h.params.Supply, "supply", "s", 0, "supply for the home purchase")
	f.Float64VarP(&h.params.Loan, "loan", "l", 0, "the loan value for home purchase")
	f.Float64VarP(&h.params.LoanRatePercent, "loan-rate", "r", 0, "the loan rate in percent (everything included)")
	f.Float64VarP(&h.params.PurchaseChargesPercent, "purchase-charges", "p", 0, "the purchase charges in percent of the purchase")
	f.Float64VarP(&h.params.AnnualChargesPercent, "annual-charges", "a", 0, "the annual charges in percent of the purchase")
	f.Float64VarP(&h.params.AppreciationPercent, "home-appreciation", "e", 0, "the home appreciation by year in percent")
	f.Float64VarP(&h.params.Rent, "rent", "m", 0, "the home rent for a month")
	f.Float64VarP(&h.params.InvestRatePercent, "invest-rate", "i", 0, "the investment interest rate in percent")
	f.IntVarP(&h.params.Years, "years", "y", 0, "the years for the purchase")
	f.StringVar(&h.scenario, "scenario", "", "YAML file with the comparison parameters, flags take precedence")
}

// resolve объединяет сценарий и флаги. Явно заданный флаг важнее значения из сценария.
func (h *homeFlags) resolve(cmd *cobra.Command) (reports.HomeParams, error) {
	p := h.params

	provided := make(map[string]bool, len(homeFlagNames))
	for _, name := range homeFlagNames {
		provided[name] = cmd.Flags().Changed(name)
	}

	if h.scenario != "" {
		scenario, err := config.LoadHomeScenario(h.scenario)
		if err != nil {
			return p, err
		}

		fill := func(name string, dst, value *float64) {
			if value != nil && !provided[name] {
				*dst = *value
				provided[name] = true
			}
		}
		fill("supply", &p.Supply, scenario.Supply)
		fill("loan", &p.Loan, scenario.Loan)
		fill("loan-rate", &p.LoanRatePercent, scenario.LoanRate)
		fill("purchase-charges", &p.PurchaseChargesPercent, scenario.PurchaseCharges)
		fill("annual-charges", &p.AnnualChargesPercent, scenario.AnnualCharges)
		fill("home-appreciation", &p.AppreciationPercent, scenario.HomeAppreciation)
		fill("rent", &p.Rent, scenario.Rent)
		fill("invest-rate", &p.InvestRatePercent, scenario.InvestRate)

		if scenario.Years != nil && !provided["years"] {
			p.Years = *scenario.Years
			provided["years"] = true
		}
	}

	var missing []string
	for _, name := range homeFlagNames {
		if !provided[name] {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return p, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	return p, nil
}

func (a *App) homeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Compare a home purchase with renting and investing",
	}
	cmd.AddCommand(a.homeCompareAtCommand(), a.homeTableCommand())
	return cmd
}

func (a *App) homeCompareAtCommand() *cobra.Command {
	var flags homeFlags

	cmd := &cobra.Command{
		Use:   "compare-at N-PERIODS",
		Short: "Compare a home purchase and renting at a point in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePeriodArg("n-periods", args[0])
			if err != nil {
				return err
			}
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			cmp, err := a.service.HomeCompareAt(cmd.Context(), p, at)
			if err != nil {
				return err
			}
			return a.print(cmd, render.HomeComparisonDocument(cmp))
		},
	}
	flags.bind(cmd)

	return cmd
}

func (a *App) homeTableCommand() *cobra.Command {
	var (
		flags   homeFlags
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "table EVERY-PERIOD [TO]",
		Short: "Compare a home purchase and renting every n periods, by default over the loan length",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			every, err := parsePeriodArg("every-period", args[0])
			if err != nil {
				return err
			}
			to := 0
			if len(args) == 2 {
				if to, err = parsePeriodArg("to", args[1]); err != nil {
					return err
				}
			}
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			table, err := a.service.HomeTable(cmd.Context(), p, every, to)
			if err != nil {
				return err
			}

			doc := render.HomeTableDocument(table)
			if err := a.print(cmd, doc); err != nil {
				return err
			}
			return a.export(pdfPath, doc)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also save the table to a PDF file")

	return cmd
}
