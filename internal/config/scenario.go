package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HomeScenario описывает сценарий "покупка или аренда" в YAML файле.
// Ставки и расходы указываются в процентах, как и в командной строке.
type HomeScenario struct {
	Supply           *float64 `yaml:"supply"`
	Loan             *float64 `yaml:"loan"`
	LoanRate         *float64 `yaml:"loan_rate"`
	PurchaseCharges  *float64 `yaml:"purchase_charges"`
	AnnualCharges    *float64 `yaml:"annual_charges"`
	HomeAppreciation *float64 `yaml:"home_appreciation"`
	Rent             *float64 `yaml:"rent"`
	InvestRate       *float64 `yaml:"invest_rate"`
	Years            *int     `yaml:"years"`
}

// LoadHomeScenario читает сценарий из YAML файла.
// Отсутствующие поля остаются nil и должны быть заданы флагами.
func LoadHomeScenario(filename string) (*HomeScenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var scenario HomeScenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, err)
	}

	return &scenario, nil
}
