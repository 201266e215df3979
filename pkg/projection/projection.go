// Package projection computes savings and investment growth projections.
package projection

import (
	"math"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
)

// ShortTermPoint is one month of the linear short-term projection.
type ShortTermPoint struct {
	Month      int     `json:"month"`
	Savings    float64 `json:"savings"`
	Cumulative float64 `json:"cumulative"`
}

// ShortTerm projects linear savings accumulation over the given number of
// months, 1-indexed. The linear model has no distinct marginal value, so
// Savings equals Cumulative at every point.
func ShortTerm(monthlySavings float64, months int) []ShortTermPoint {
	points := make([]ShortTermPoint, 0, months)
	for month := 1; month <= months; month++ {
		cumulative := monthlySavings * float64(month)
		points = append(points, ShortTermPoint{
			Month:      month,
			Savings:    cumulative,
			Cumulative: cumulative,
		})
	}
	return points
}

// LongTermPoint is one month of the inflation-adjusted long-term projection.
type LongTermPoint struct {
	Month      int     `json:"month"`
	Savings    float64 `json:"savings"`
	Cumulative float64 `json:"cumulative"`
	RealValue  float64 `json:"realValue"`
}

// LongTerm projects nominal savings accumulation and its purchasing-power
// equivalent. Inflation compounds annually but is evaluated at a
// fractional-year exponent for each month. Savings carries the constant
// monthly contribution. RealValue is rounded to cents; with zero inflation
// it equals Cumulative exactly.
func LongTerm(monthlySavings float64, months int, inflationRate float64) []LongTermPoint {
	points := make([]LongTermPoint, 0, months)
	for month := 1; month <= months; month++ {
		nominal := monthlySavings * float64(month)
		inflationFactor := math.Pow(1+inflationRate/constants.PercentageMultiplier,
			float64(month)/constants.MonthsPerYear)
		points = append(points, LongTermPoint{
			Month:      month,
			Savings:    monthlySavings,
			Cumulative: nominal,
			RealValue:  mathutil.Round(nominal / inflationFactor),
		})
	}
	return points
}

// CompoundInterestParams configures an investment growth projection.
type CompoundInterestParams struct {
	InitialAmount       float64 `json:"initialAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualReturn        float64 `json:"annualReturn"`
	InflationRate       float64 `json:"inflationRate"`
	Years               int     `json:"years"`
}

// CompoundInterestPoint is one emitted year of an investment projection.
type CompoundInterestPoint struct {
	Year      int     `json:"year"`
	Total     float64 `json:"total"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	RealValue float64 `json:"realValue"`
}

// CompoundInterest simulates month-by-month investment growth with monthly
// compounding, emitting a data point at month 0 and every 12-month boundary.
// Each month's growth is applied before that month's contribution, so a
// contribution earns no interest in its own deposit month. Principal is the
// raw amount contributed to date; Interest never reports below zero even
// when a negative return drags Total under Principal. RealValue discounts by
// whole years only, coarser than LongTerm's fractional-year discounting; the
// two call sites expect different curves. All outputs rounded to cents.
func CompoundInterest(params CompoundInterestParams) []CompoundInterestPoint {
	monthlyRate := params.AnnualReturn / constants.PercentageMultiplier / constants.MonthsPerYear
	finalMonth := params.Years * constants.MonthsPerYear
	total := params.InitialAmount

	points := make([]CompoundInterestPoint, 0, params.Years+1)
	for month := 0; month <= finalMonth; month++ {
		year := month / constants.MonthsPerYear

		if month%constants.MonthsPerYear == 0 || month == finalMonth {
			principal := params.InitialAmount + params.MonthlyContribution*float64(month)
			interest := math.Max(0, total-principal)
			inflationFactor := math.Pow(1+params.InflationRate/constants.PercentageMultiplier, float64(year))
			points = append(points, CompoundInterestPoint{
				Year:      year,
				Total:     mathutil.Round(total),
				Principal: mathutil.Round(principal),
				Interest:  mathutil.Round(interest),
				RealValue: mathutil.Round(total / inflationFactor),
			})
		}

		total = total*(1+monthlyRate) + params.MonthlyContribution
	}
	return points
}

// ROI is earned interest as a percentage of contributed principal, or 0 when
// there is no principal to divide by.
func ROI(principal, interest float64) float64 {
	if principal <= 0 {
		return 0
	}
	return (interest / principal) * 100
}
