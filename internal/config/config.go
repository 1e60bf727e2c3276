package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию утилиты
type Config struct {
	MaxCapital      float64
	MaxRate         float64
	MaxYears        int
	MaxPeriodicity  int
	MaxPeriods      int
	MaxBalanceCap   float64
	Workers         int
	OutputFormat    string
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string
	MetricsTextfile string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		MaxCapital:      getEnvFloat("MAX_CAPITAL", 1e9),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		MaxYears:        getEnvInt("MAX_YEARS", 50),
		MaxPeriodicity:  getEnvInt("MAX_PERIODICITY", 365),
		MaxPeriods:      getEnvInt("MAX_PERIODS", 36500),
		MaxBalanceCap:   getEnvFloat("MAX_BALANCE_CAP", 1e12),
		Workers:         getEnvInt("WORKERS", 4),
		OutputFormat:    getEnvString("OUTPUT_FORMAT", "table"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "homeinvest"),
		MetricsTextfile: getEnvString("METRICS_TEXTFILE", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// BalanceCap возвращает максимальный капитал для защиты от переполнения
func (c *Config) BalanceCap() float64 {
	return c.MaxBalanceCap
}
