package plan_test

import (
	"testing"

	"github.com/iwvelando/finance-planner/internal/plan"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStartsWithDefaults(t *testing.T) {
	store := plan.NewStore(nil)

	assert.Equal(t, plan.Default(), store.Snapshot())
}

func TestStoreAddAssignsID(t *testing.T) {
	store := plan.NewStore(nil)

	income := store.AddIncome(finance.Income{Name: "Salary", Amount: 5000, Frequency: finance.FrequencyMonthly})
	assert.NotEmpty(t, income.ID, "add must assign an id when absent")

	expense := store.AddExpense(finance.Expense{ID: "fixed", Name: "Rent", Amount: 1500})
	assert.Equal(t, "fixed", expense.ID, "provided ids are kept")
	assert.Equal(t, finance.ExpenseNeed, expense.Type, "unclassified expense defaults to need")

	debt := store.AddDebt(finance.Debt{Name: "Card", Principal: 4000})
	assert.NotEmpty(t, debt.ID)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Incomes, 1)
	require.Len(t, snapshot.Expenses, 1)
	require.Len(t, snapshot.Debts, 1)
}

func TestStoreUpdate(t *testing.T) {
	store := plan.NewStore(nil)
	income := store.AddIncome(finance.Income{Name: "Salary", Amount: 5000})

	income.Amount = 5500
	assert.True(t, store.UpdateIncome(income))
	assert.Equal(t, 5500.0, store.Snapshot().Incomes[0].Amount)

	assert.False(t, store.UpdateIncome(finance.Income{ID: "missing"}))
}

func TestStoreUpdateExpenseDefaultsType(t *testing.T) {
	store := plan.NewStore(nil)
	expense := store.AddExpense(finance.Expense{Name: "Gym", Type: finance.ExpenseWant})

	expense.Type = ""
	require.True(t, store.UpdateExpense(expense))

	assert.Equal(t, finance.ExpenseNeed, store.Snapshot().Expenses[0].Type)
}

func TestStoreRemove(t *testing.T) {
	store := plan.NewStore(nil)
	first := store.AddDebt(finance.Debt{Name: "Card"})
	second := store.AddDebt(finance.Debt{Name: "Car"})

	assert.True(t, store.RemoveDebt(first.ID))
	assert.False(t, store.RemoveDebt(first.ID), "second removal finds nothing")

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Debts, 1)
	assert.Equal(t, second.ID, snapshot.Debts[0].ID)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := plan.NewStore(nil)
	store.AddIncome(finance.Income{Name: "Salary", Amount: 5000})

	snapshot := store.Snapshot()
	snapshot.Incomes[0].Amount = 1

	assert.Equal(t, 5000.0, store.Snapshot().Incomes[0].Amount,
		"mutating a snapshot must not reach the store")
}

func TestStoreReplaceAndReset(t *testing.T) {
	store := plan.NewStore(nil)

	imported := plan.Default()
	imported.Incomes = []finance.Income{{ID: "1", Name: "Salary", Amount: 5000}}
	imported.SelectedStrategy = "balanced"
	imported.Language = plan.LanguageGerman
	store.Replace(imported)

	assert.Equal(t, imported, store.Snapshot())

	store.Reset()
	assert.Equal(t, plan.Default(), store.Snapshot())
}

func TestStoreStrategySelection(t *testing.T) {
	store := plan.NewStore(nil)

	store.SelectStrategy("debt_payoff")
	assert.Equal(t, "debt_payoff", store.Snapshot().SelectedStrategy)

	store.SelectStrategy("")
	assert.Empty(t, store.Snapshot().SelectedStrategy, "empty id clears the selection")

	custom := finance.SplitValues{Needs: 40, Wants: 20, Savings: 40}
	store.SetCustomStrategy(custom)
	assert.Equal(t, custom, store.Snapshot().CustomStrategy)

	store.SetLanguage(plan.LanguageSpanish)
	assert.Equal(t, plan.LanguageSpanish, store.Snapshot().Language)
}
