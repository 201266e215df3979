// Package debt simulates month-by-month debt amortization and compares
// payoff-ordering strategies.
package debt

import (
	"fmt"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// PaymentEntry holds the values for a single simulated month.
type PaymentEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Schedule is the full amortization result for one debt. When Amortizing is
// false the fixed payment never reduces principal and the entries stop at
// the month the simulation gave up; callers must treat that as "this debt's
// current payment cannot reduce principal", not as an error.
type Schedule struct {
	Entries       []PaymentEntry `json:"entries"`
	Months        int            `json:"months"`
	TotalInterest float64        `json:"totalInterest"`
	Amortizing    bool           `json:"amortizing"`
	FinalBalance  float64        `json:"finalBalance"`
}

// MonthlyInterest calculates one month of interest on a balance at the given
// annual rate.
func MonthlyInterest(balance, annualRate float64) float64 {
	return balance * annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Simulator runs amortization simulations.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a simulator instance. A nil logger falls back to a
// no-op logger.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// GenerateSchedule simulates a single debt under its fixed monthly payment.
// The schedule is recomputed from principal, rate, and payment; the record's
// RemainingMonths field is ignored. The simulation stops when the balance
// reaches zero, when the payment stops covering accrued interest, or at the
// 600-month safety cap.
func (s *Simulator) GenerateSchedule(d finance.Debt) Schedule {
	schedule := Schedule{Amortizing: true}
	balance := d.Principal

	for month := 1; balance > 0 && month <= constants.MaxAmortizationMonths; month++ {
		interest := MonthlyInterest(balance, d.InterestRate)
		principalPortion := mathutil.Min(d.MonthlyPayment-interest, balance)
		if principalPortion <= 0 {
			s.logger.Debug(fmt.Sprintf("debt %s: payment %.2f does not cover interest %.2f, stopping schedule",
				d.Name, d.MonthlyPayment, interest),
				zap.String("op", "debt.GenerateSchedule"),
			)
			schedule.Amortizing = false
			break
		}

		balance -= principalPortion
		if balance < constants.BalancePayoffTolerance {
			// Machine error would otherwise leave a lingering sub-cent balance.
			balance = 0
		}

		schedule.Entries = append(schedule.Entries, PaymentEntry{
			Month:     month,
			Payment:   principalPortion + interest,
			Interest:  interest,
			Principal: principalPortion,
			Balance:   balance,
		})
		schedule.Months = month
		schedule.TotalInterest += interest
	}

	schedule.FinalBalance = balance
	return schedule
}
