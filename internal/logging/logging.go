package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New создает логгер с заданным уровнем (DEBUG, INFO, WARN, ERROR).
// Логи пишутся в out отдельно от отчетов, которые выводятся в stdout.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		return logger, fmt.Errorf("unknown log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}
