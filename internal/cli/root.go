package cli

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloud-ru/homeinvest-go/internal/config"
	"github.com/cloud-ru/homeinvest-go/internal/render"
	"github.com/cloud-ru/homeinvest-go/internal/reports"
)

// App хранит общие зависимости команд
type App struct {
	service  *reports.Service
	logger   *logrus.Logger
	output   string
	logLevel string
}

// NewRootCommand создает дерево команд homeinvest
func NewRootCommand(cfg *config.Config, service *reports.Service, logger *logrus.Logger) *cobra.Command {
	app := &App{service: service, logger: logger}

	root := &cobra.Command{
		Use:           "homeinvest",
		Short:         "Loan, investment and home purchase versus renting calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := render.CheckFormat(app.output); err != nil {
				return err
			}
			lvl, err := logrus.ParseLevel(app.logLevel)
			if err != nil {
				return fmt.Errorf("unknown log level %q: %w", app.logLevel, err)
			}
			app.logger.SetLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&app.output, "output", "o", cfg.OutputFormat, "output format: table or json")
	root.PersistentFlags().StringVar(&app.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(app.loanCommand(), app.investCommand(), app.homeCommand())

	return root
}

func (a *App) print(cmd *cobra.Command, doc render.Document) error {
	return render.Write(cmd.OutOrStdout(), a.output, doc)
}

// export сохраняет таблицу в PDF, если указан путь
func (a *App) export(filename string, doc render.Document) error {
	if filename == "" {
		return nil
	}
	if err := render.WritePDF(filename, doc); err != nil {
		return err
	}
	a.logger.WithField("file", filename).Info("pdf report saved")
	return nil
}

func parsePeriodArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}

// markRequired паникует на неизвестном имени флага: это ошибка в коде команды
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("%s: %v", cmd.Name(), err))
		}
	}
}
