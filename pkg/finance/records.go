// Package finance defines the planning domain records and provides the pure
// calculation functions that convert them into normalized monthly figures.
package finance

// Frequency describes how often a recurring amount applies.
type Frequency string

// Recognized frequencies. Anything else is treated as monthly.
const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnual   Frequency = "annual"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
)

// ExpenseType classifies an expense for actual-vs-recommended comparison.
type ExpenseType string

// Expense classifications.
const (
	ExpenseNeed    ExpenseType = "need"
	ExpenseWant    ExpenseType = "want"
	ExpenseSavings ExpenseType = "savings"
)

// Category tags an expense for per-category breakdowns.
type Category string

// Expense categories.
const (
	CategoryHousing        Category = "housing"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryInsurance      Category = "insurance"
	CategoryDebt           Category = "debt"
	CategoryOther          Category = "other"
)

// Income is a recurring income record.
type Income struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// Expense is a recurring expense record.
type Expense struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Amount    float64     `json:"amount"`
	Category  Category    `json:"category"`
	Frequency Frequency   `json:"frequency"`
	Type      ExpenseType `json:"type"`
}

// Debt is a fixed-payment debt record. RemainingMonths is informational; the
// amortization engine recomputes its own schedule from principal, rate, and
// payment rather than trusting this field.
type Debt struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Principal       float64 `json:"principal"`
	InterestRate    float64 `json:"interestRate"`
	MonthlyPayment  float64 `json:"monthlyPayment"`
	RemainingMonths int     `json:"remainingMonths"`
}

// SplitValues is a needs/wants/savings percentage triple.
type SplitValues struct {
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
	Savings int `json:"savings"`
}

// Sum returns the total of the three segments.
func (s SplitValues) Sum() int {
	return s.Needs + s.Wants + s.Savings
}

// MonthlyBreakdown summarizes a plan's normalized monthly cash flow.
type MonthlyBreakdown struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalDebtPayment float64 `json:"totalDebtPayment"`
	AvailableSavings float64 `json:"availableSavings"`
	SavingsRate      float64 `json:"savingsRate"`
}
