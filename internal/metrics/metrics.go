package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportCalls счетчик построенных отчетов
	ReportCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeinvest_report_calls_total",
			Help: "Общее количество построенных отчетов",
		},
		[]string{"report", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homeinvest_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"report", "error_type"},
	)

	// ReportDuration время построения отчета
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "homeinvest_report_duration_seconds",
			Help:    "Время построения отчета",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"report"},
	)

	// SeriesRows число строк последней построенной таблицы
	SeriesRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "homeinvest_series_rows",
			Help: "Число строк в последней таблице",
		},
		[]string{"report"},
	)
)

// WriteTextfile сохраняет метрики в файл для textfile коллектора node_exporter
func WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", filename, err)
	}
	return nil
}
