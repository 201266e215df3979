// Package plan owns the FinanceData aggregate: the collections of income,
// expense, and debt records plus strategy selection, with snapshot-based
// import and export. The calculation packages never see this store; they
// take a snapshot and return derived values.
package plan

import (
	"fmt"
	"os"

	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/strategy"
)

// Supported display languages.
const (
	LanguageEnglish = "en"
	LanguageSpanish = "es"
	LanguageFrench  = "fr"
	LanguageGerman  = "de"
)

// Data is a complete plan snapshot. SelectedStrategy is a strategy id, the
// strategy.CustomID sentinel, or empty for none.
type Data struct {
	Incomes          []finance.Income    `json:"incomes"`
	Expenses         []finance.Expense   `json:"expenses"`
	Debts            []finance.Debt      `json:"debts"`
	SelectedStrategy string              `json:"selectedStrategy,omitempty"`
	CustomStrategy   finance.SplitValues `json:"customStrategy"`
	Language         string              `json:"language"`
}

// Default returns the zeroed plan a user starts from.
func Default() Data {
	return Data{
		Incomes:        []finance.Income{},
		Expenses:       []finance.Expense{},
		Debts:          []finance.Debt{},
		CustomStrategy: strategy.DefaultCustom,
		Language:       LanguageEnglish,
	}
}

// Load reads and imports a plan snapshot from a JSON file.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("error reading plan file, %s", err)
	}
	return Import(raw)
}
