package plan

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/strategy"
)

// ErrInvalidStructure reports a snapshot missing one of the required fields.
// Structural failure rejects the snapshot as a whole; nothing is partially
// imported.
var ErrInvalidStructure = errors.New("invalid data structure")

// MigrateExpenses assigns the default need classification to legacy expense
// records that predate the type field.
func MigrateExpenses(expenses []finance.Expense) []finance.Expense {
	migrated := make([]finance.Expense, len(expenses))
	for i, expense := range expenses {
		if expense.Type == "" {
			expense.Type = finance.ExpenseNeed
		}
		migrated[i] = expense
	}
	return migrated
}

// Import validates and migrates a raw JSON snapshot. The incomes, expenses,
// and debts arrays and the language string are required; a missing
// selectedStrategy defaults to none and a missing customStrategy defaults to
// the 50/30/20 split.
func Import(raw []byte) (Data, error) {
	var snapshot struct {
		Incomes          *[]finance.Income    `json:"incomes"`
		Expenses         *[]finance.Expense   `json:"expenses"`
		Debts            *[]finance.Debt      `json:"debts"`
		SelectedStrategy *string              `json:"selectedStrategy"`
		CustomStrategy   *finance.SplitValues `json:"customStrategy"`
		Language         *string              `json:"language"`
	}
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return Data{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if snapshot.Incomes == nil || snapshot.Expenses == nil || snapshot.Debts == nil || snapshot.Language == nil {
		return Data{}, ErrInvalidStructure
	}

	data := Data{
		Incomes:        *snapshot.Incomes,
		Expenses:       MigrateExpenses(*snapshot.Expenses),
		Debts:          *snapshot.Debts,
		CustomStrategy: strategy.DefaultCustom,
		Language:       *snapshot.Language,
	}
	if snapshot.SelectedStrategy != nil {
		data.SelectedStrategy = *snapshot.SelectedStrategy
	}
	if snapshot.CustomStrategy != nil {
		data.CustomStrategy = *snapshot.CustomStrategy
	}
	return data, nil
}

// Export serializes a plan snapshot for download or backup.
func Export(data Data) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
