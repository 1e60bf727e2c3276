package utils

import "math"

// Round2 округляет число до 2 знаков после запятой (половина - от нуля)
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FromPercent переводит проценты в долю: 2.9 -> 0.029
func FromPercent(percent float64) float64 {
	return percent / 100.0
}

// ToPercent переводит долю в проценты: 0.029 -> 2.9
func ToPercent(fraction float64) float64 {
	return fraction * 100.0
}
