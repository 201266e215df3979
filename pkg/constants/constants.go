// Package constants provides shared constants for the finance-planner application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of weeks in a year
	WeeksPerYear = 52

	// BiweeklyPeriodsPerYear is the number of two-week pay periods in a year
	BiweeklyPeriodsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Amortization constants
const (
	// MaxAmortizationMonths caps debt simulations at 50 years so that a
	// payment which never covers accrued interest cannot loop forever.
	MaxAmortizationMonths = 600

	// BalancePayoffTolerance is the remaining balance below which a debt is
	// considered paid off.
	BalancePayoffTolerance = 0.01
)

// Split-bar constants
const (
	// SplitTotal is the percentage total every split must preserve
	SplitTotal = 100

	// MinSegmentPercent is the smallest share any split segment may hold
	// while the controller mediates an edit.
	MinSegmentPercent = 1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultPlanFile is the default plan snapshot file name
	DefaultPlanFile = "plan.json"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for plan
	// snapshots (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
