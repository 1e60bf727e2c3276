package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// Форматы вывода отчетов
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Document - отчет, готовый к выводу: заголовок, шапка таблицы и строки
type Document struct {
	Title   string
	Header  []string
	Rows    [][]string
	Footer  string
	Payload interface{}
}

// CheckFormat проверяет формат вывода
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("неизвестный формат вывода %q (ожидается %s или %s)", format, FormatTable, FormatJSON)
	}
}

// Write выводит документ в заданном формате
func Write(w io.Writer, format string, doc Document) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, doc.Payload)
	case FormatTable:
		return writeTable(w, doc)
	default:
		return CheckFormat(format)
	}
}

func writeJSON(w io.Writer, payload interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, doc Document) error {
	if doc.Title != "" {
		if _, err := fmt.Fprintf(w, "*** %s ***\n\n", doc.Title); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(doc.Header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(doc.Rows)
	table.Render()

	if doc.Footer != "" {
		if _, err := fmt.Fprintln(w, doc.Footer); err != nil {
			return err
		}
	}
	return nil
}

// Amount форматирует сумму с двумя знаками после запятой
func Amount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

// Percent форматирует значение в процентах с двумя знаками: 12.345 -> "12.35%"
func Percent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}

// Rate форматирует ставку в процентах без лишних нулей: 2.90 -> "2.9%"
func Rate(percent float64) string {
	return decimal.NewFromFloat(percent).String() + "%"
}

// Years форматирует число лет с одним знаком после запятой
func Years(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// Period форматирует номер периода
func Period(value int) string {
	return strconv.Itoa(value)
}
