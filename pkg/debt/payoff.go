package debt

import (
	"fmt"
	"sort"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// Payoff-ordering strategy names.
const (
	StrategyAvalanche = "avalanche"
	StrategySnowball  = "snowball"
)

// DefaultExtraAmounts are the additional monthly payments evaluated by the
// extra-payment sensitivity analysis.
var DefaultExtraAmounts = []float64{0, 50, 100, 200, 500}

// StrategyResult reports one multi-debt payoff simulation.
type StrategyResult struct {
	Strategy      string  `json:"strategy"`
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
	PaidOff       bool    `json:"paidOff"`
}

// Comparison holds both payoff orderings side by side. The deltas are
// snowball minus avalanche, so positive values are what the avalanche
// ordering saves.
type Comparison struct {
	Avalanche     StrategyResult `json:"avalanche"`
	Snowball      StrategyResult `json:"snowball"`
	InterestSaved float64        `json:"interestSaved"`
	MonthsSaved   int            `json:"monthsSaved"`
}

// SensitivityPoint reports the payoff outcome for one extra monthly amount.
type SensitivityPoint struct {
	Extra         float64 `json:"extra"`
	Months        int     `json:"months"`
	TotalInterest float64 `json:"totalInterest"`
}

// ComparePayoffStrategies runs the avalanche (highest rate first) and
// snowball (lowest balance first) orderings as independent simulations over
// the same debts and surfaces the interest and time delta between them.
func (s *Simulator) ComparePayoffStrategies(debts []finance.Debt) Comparison {
	avalanche := s.runOrdered(debts, StrategyAvalanche)
	snowball := s.runOrdered(debts, StrategySnowball)
	return Comparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: mathutil.Round(snowball.TotalInterest - avalanche.TotalInterest),
		MonthsSaved:   snowball.Months - avalanche.Months,
	}
}

// runOrdered simulates all debts simultaneously under one priority ordering.
// The combined minimum payments form a fixed monthly budget: each open debt
// receives its own minimum, and whatever the closed debts free up rolls into
// the highest-priority open debt. The debt list shrinks as balances hit
// zero.
func (s *Simulator) runOrdered(debts []finance.Debt, strategy string) StrategyResult {
	result := StrategyResult{Strategy: strategy}
	if len(debts) == 0 {
		result.PaidOff = true
		return result
	}

	order := make([]finance.Debt, len(debts))
	copy(order, debts)
	if strategy == StrategyAvalanche {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].InterestRate > order[j].InterestRate
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Principal < order[j].Principal
		})
	}

	budget := finance.TotalMonthlyDebtPayment(debts)
	balances := make([]float64, len(order))
	for i, d := range order {
		balances[i] = d.Principal
	}

	for month := 1; month <= constants.MaxAmortizationMonths; month++ {
		available := budget

		// Minimum payments first, in priority order.
		for i := range order {
			if balances[i] <= 0 {
				continue
			}
			interest := MonthlyInterest(balances[i], order[i].InterestRate)
			result.TotalInterest += interest
			payoff := balances[i] + interest
			payment := mathutil.Min(mathutil.Min(order[i].MonthlyPayment, payoff), available)
			balances[i] = payoff - payment
			available -= payment
			if balances[i] < constants.BalancePayoffTolerance {
				balances[i] = 0
			}
		}

		// Whatever the budget has left over accelerates the priority debt.
		for i := range order {
			if available <= 0 {
				break
			}
			if balances[i] <= 0 {
				continue
			}
			payment := mathutil.Min(available, balances[i])
			balances[i] -= payment
			available -= payment
			if balances[i] < constants.BalancePayoffTolerance {
				balances[i] = 0
			}
		}

		if allPaid(balances) {
			result.Months = month
			result.PaidOff = true
			break
		}
		result.Months = month
	}

	if !result.PaidOff {
		s.logger.Debug(fmt.Sprintf("%s simulation hit the %d-month cap with debt remaining",
			strategy, constants.MaxAmortizationMonths),
			zap.String("op", "debt.runOrdered"),
		)
	}

	result.TotalInterest = mathutil.Round(result.TotalInterest)
	return result
}

// ExtraPaymentSensitivity recomputes the combined payoff for each extra
// monthly amount, with the extra split evenly across still-open debts each
// month. Months is the longest payoff across debts; a non-amortizing debt
// pins it at the simulation cap.
func (s *Simulator) ExtraPaymentSensitivity(debts []finance.Debt, extras []float64) []SensitivityPoint {
	if len(extras) == 0 {
		extras = DefaultExtraAmounts
	}

	points := make([]SensitivityPoint, 0, len(extras))
	for _, extra := range extras {
		points = append(points, s.runWithExtra(debts, extra))
	}
	return points
}

// runWithExtra simulates all debts with an even split of the extra payment.
func (s *Simulator) runWithExtra(debts []finance.Debt, extra float64) SensitivityPoint {
	point := SensitivityPoint{Extra: extra}
	if len(debts) == 0 {
		return point
	}

	balances := make([]float64, len(debts))
	for i, d := range debts {
		balances[i] = d.Principal
	}

	for month := 1; month <= constants.MaxAmortizationMonths; month++ {
		open := 0
		for i := range balances {
			if balances[i] > 0 {
				open++
			}
		}
		if open == 0 {
			break
		}
		share := extra / float64(open)

		progress := false
		for i := range debts {
			if balances[i] <= 0 {
				continue
			}
			interest := MonthlyInterest(balances[i], debts[i].InterestRate)
			point.TotalInterest += interest
			principalPortion := mathutil.Min(debts[i].MonthlyPayment+share-interest, balances[i])
			if principalPortion <= 0 {
				continue
			}
			progress = true
			balances[i] -= principalPortion
			if balances[i] < constants.BalancePayoffTolerance {
				balances[i] = 0
			}
		}
		point.Months = month

		if !progress {
			// No payment is reducing any principal; further months only
			// accrue interest.
			s.logger.Debug(fmt.Sprintf("extra payment %.2f makes no principal progress, stopping", extra),
				zap.String("op", "debt.runWithExtra"),
			)
			point.Months = constants.MaxAmortizationMonths
			break
		}
	}

	point.TotalInterest = mathutil.Round(point.TotalInterest)
	return point
}

func allPaid(balances []float64) bool {
	for _, balance := range balances {
		if balance > 0 {
			return false
		}
	}
	return true
}
