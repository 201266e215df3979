package finance

import "github.com/iwvelando/finance-planner/pkg/constants"

// ToMonthly converts a recurring amount at the given frequency to its monthly
// equivalent. Unrecognized frequencies pass through unchanged, as do zero and
// negative amounts; validation is the caller's responsibility.
func ToMonthly(amount float64, frequency Frequency) float64 {
	switch frequency {
	case FrequencyAnnual:
		return amount / constants.MonthsPerYear
	case FrequencyWeekly:
		return amount * constants.WeeksPerYear / constants.MonthsPerYear
	case FrequencyBiweekly:
		return amount * constants.BiweeklyPeriodsPerYear / constants.MonthsPerYear
	default:
		return amount
	}
}
