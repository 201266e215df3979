package finance

import "github.com/iwvelando/finance-planner/pkg/mathutil"

// TotalMonthlyIncome sums all incomes normalized to monthly amounts.
func TotalMonthlyIncome(incomes []Income) float64 {
	total := 0.0
	for _, income := range incomes {
		total += ToMonthly(income.Amount, income.Frequency)
	}
	return total
}

// TotalMonthlyExpenses sums all expenses normalized to monthly amounts,
// regardless of type.
func TotalMonthlyExpenses(expenses []Expense) float64 {
	total := 0.0
	for _, expense := range expenses {
		total += ToMonthly(expense.Amount, expense.Frequency)
	}
	return total
}

// TotalMonthlyDebtPayment sums the fixed monthly payments across all debts.
// Debt payments are defined as already monthly; no frequency conversion.
func TotalMonthlyDebtPayment(debts []Debt) float64 {
	total := 0.0
	for _, debt := range debts {
		total += debt.MonthlyPayment
	}
	return total
}

// AvailableSavings is whatever income remains after expenses and debt
// payments. May be negative when the plan runs a deficit.
func AvailableSavings(totalIncome, totalExpenses, totalDebtPayment float64) float64 {
	return totalIncome - totalExpenses - totalDebtPayment
}

// SavingsRate is available savings as a percentage of income, or 0 when
// there is no income to divide by.
func SavingsRate(availableSavings, totalIncome float64) float64 {
	if totalIncome <= 0 {
		return 0
	}
	return (availableSavings / totalIncome) * 100
}

// Summarize computes the full monthly cash-flow breakdown for a plan
// snapshot.
func Summarize(incomes []Income, expenses []Expense, debts []Debt) MonthlyBreakdown {
	totalIncome := TotalMonthlyIncome(incomes)
	totalExpenses := TotalMonthlyExpenses(expenses)
	totalDebt := TotalMonthlyDebtPayment(debts)
	available := AvailableSavings(totalIncome, totalExpenses, totalDebt)
	return MonthlyBreakdown{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		TotalDebtPayment: totalDebt,
		AvailableSavings: available,
		SavingsRate:      SavingsRate(available, totalIncome),
	}
}

// ActualAllocation partitions monthly spending by expense type and compares
// it against income.
type ActualAllocation struct {
	NeedsAmount          float64 `json:"needsAmount"`
	WantsAmount          float64 `json:"wantsAmount"`
	SavingsExpenseAmount float64 `json:"savingsExpenseAmount"`
	ActualSavings        float64 `json:"actualSavings"`
	NeedsPercent         float64 `json:"needsPercent"`
	WantsPercent         float64 `json:"wantsPercent"`
	SavingsPercent       float64 `json:"savingsPercent"`
}

// CalculateActualAllocation sums each monthly-normalized expense bucket by
// type. ActualSavings is savings-tagged spending plus whatever income is left
// after all expenses, so leftover income always counts as savings even when
// no expense is tagged savings. All percentages are 0 when income is not
// positive.
func CalculateActualAllocation(expenses []Expense, totalIncome, totalExpenses float64) ActualAllocation {
	var needs, wants, savings float64
	for _, expense := range expenses {
		monthly := ToMonthly(expense.Amount, expense.Frequency)
		switch expense.Type {
		case ExpenseNeed:
			needs += monthly
		case ExpenseWant:
			wants += monthly
		case ExpenseSavings:
			savings += monthly
		}
	}
	actualSavings := savings + (totalIncome - totalExpenses)

	allocation := ActualAllocation{
		NeedsAmount:          needs,
		WantsAmount:          wants,
		SavingsExpenseAmount: savings,
		ActualSavings:        actualSavings,
	}
	if totalIncome > 0 {
		allocation.NeedsPercent = mathutil.CalculatePercentage(needs, totalIncome)
		allocation.WantsPercent = mathutil.CalculatePercentage(wants, totalIncome)
		allocation.SavingsPercent = mathutil.CalculatePercentage(actualSavings, totalIncome)
	}
	return allocation
}

// RecommendedAmounts are the dollar amounts a strategy breakdown recommends
// for a given income.
type RecommendedAmounts struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// CalculateRecommendedAmounts maps a percentage breakdown onto a total
// monthly income.
func CalculateRecommendedAmounts(totalIncome float64, breakdown SplitValues) RecommendedAmounts {
	return RecommendedAmounts{
		Needs:   mathutil.ApplyPercentage(totalIncome, float64(breakdown.Needs)),
		Wants:   mathutil.ApplyPercentage(totalIncome, float64(breakdown.Wants)),
		Savings: mathutil.ApplyPercentage(totalIncome, float64(breakdown.Savings)),
	}
}

// CategoryTotal is the monthly-normalized spending in a single category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
}

// GroupExpensesByCategory aggregates monthly-normalized expenses per
// category, preserving first-seen category order for chart feeds.
func GroupExpensesByCategory(expenses []Expense) []CategoryTotal {
	var groups []CategoryTotal
	index := make(map[Category]int)
	for _, expense := range expenses {
		monthly := ToMonthly(expense.Amount, expense.Frequency)
		if i, ok := index[expense.Category]; ok {
			groups[i].Value += monthly
			continue
		}
		index[expense.Category] = len(groups)
		groups = append(groups, CategoryTotal{Category: expense.Category, Value: monthly})
	}
	return groups
}
