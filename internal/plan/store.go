package plan

import (
	"sync"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"go.uber.org/zap"
)

// Store holds the current plan and applies record-level edits. Every read
// hands out a snapshot copy and every edit fully replaces the affected
// record, so callers never share mutable state with the store.
type Store struct {
	mu     sync.RWMutex
	logger *zap.Logger
	data   Data
}

// NewStore creates a store seeded with the default plan. A nil logger falls
// back to a no-op logger.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger, data: Default()}
}

// Snapshot returns a copy of the current plan.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyData(s.data)
}

// Replace swaps in a complete plan snapshot, e.g. after an import.
func (s *Store) Replace(data Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = copyData(data)
}

// Reset restores the default plan state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("resetting plan to defaults", zap.String("op", "plan.Reset"))
	s.data = Default()
}

// AddIncome appends an income record, assigning an id when absent, and
// returns the stored record.
func (s *Store) AddIncome(income finance.Income) finance.Income {
	s.mu.Lock()
	defer s.mu.Unlock()
	if income.ID == "" {
		income.ID = uuid.NewString()
	}
	s.data.Incomes = append(s.data.Incomes, income)
	return income
}

// UpdateIncome replaces the income with a matching id. Reports whether a
// record was found.
func (s *Store) UpdateIncome(income finance.Income) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Incomes {
		if s.data.Incomes[i].ID == income.ID {
			s.data.Incomes[i] = income
			return true
		}
	}
	return false
}

// RemoveIncome deletes the income with the given id. Reports whether a
// record was found.
func (s *Store) RemoveIncome(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Incomes {
		if s.data.Incomes[i].ID == id {
			s.data.Incomes = append(s.data.Incomes[:i], s.data.Incomes[i+1:]...)
			return true
		}
	}
	return false
}

// AddExpense appends an expense record, assigning an id when absent and
// defaulting an unclassified expense to need, and returns the stored record.
func (s *Store) AddExpense(expense finance.Expense) finance.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if expense.Type == "" {
		expense.Type = finance.ExpenseNeed
	}
	s.data.Expenses = append(s.data.Expenses, expense)
	return expense
}

// UpdateExpense replaces the expense with a matching id. Reports whether a
// record was found.
func (s *Store) UpdateExpense(expense finance.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Expenses {
		if s.data.Expenses[i].ID == expense.ID {
			if expense.Type == "" {
				expense.Type = finance.ExpenseNeed
			}
			s.data.Expenses[i] = expense
			return true
		}
	}
	return false
}

// RemoveExpense deletes the expense with the given id. Reports whether a
// record was found.
func (s *Store) RemoveExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Expenses {
		if s.data.Expenses[i].ID == id {
			s.data.Expenses = append(s.data.Expenses[:i], s.data.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// AddDebt appends a debt record, assigning an id when absent, and returns
// the stored record.
func (s *Store) AddDebt(debt finance.Debt) finance.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	if debt.ID == "" {
		debt.ID = uuid.NewString()
	}
	s.data.Debts = append(s.data.Debts, debt)
	return debt
}

// UpdateDebt replaces the debt with a matching id. Reports whether a record
// was found.
func (s *Store) UpdateDebt(debt finance.Debt) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Debts {
		if s.data.Debts[i].ID == debt.ID {
			s.data.Debts[i] = debt
			return true
		}
	}
	return false
}

// RemoveDebt deletes the debt with the given id. Reports whether a record
// was found.
func (s *Store) RemoveDebt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Debts {
		if s.data.Debts[i].ID == id {
			s.data.Debts = append(s.data.Debts[:i], s.data.Debts[i+1:]...)
			return true
		}
	}
	return false
}

// SelectStrategy records the chosen strategy id. Empty clears the selection.
func (s *Store) SelectStrategy(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SelectedStrategy = id
}

// SetCustomStrategy stores the user's own breakdown.
func (s *Store) SetCustomStrategy(split finance.SplitValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.CustomStrategy = split
}

// SetLanguage records the display language tag.
func (s *Store) SetLanguage(language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Language = language
}

func copyData(data Data) Data {
	out := data
	out.Incomes = append([]finance.Income(nil), data.Incomes...)
	out.Expenses = append([]finance.Expense(nil), data.Expenses...)
	out.Debts = append([]finance.Debt(nil), data.Debts...)
	return out
}
