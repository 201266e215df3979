// Package report assembles a complete analysis from a plan snapshot: the
// monthly cash-flow breakdown, allocation comparison, growth projections,
// and debt payoff analysis consumed by the CLI and HTTP surfaces.
package report

import (
	"github.com/iwvelando/finance-planner/internal/plan"
	"github.com/iwvelando/finance-planner/pkg/debt"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/projection"
	"github.com/iwvelando/finance-planner/pkg/strategy"
	"go.uber.org/zap"
)

// Default projection horizons, matching the analytics views.
const (
	DefaultShortTermMonths = 3
	DefaultLongTermMonths  = 12
)

// Options tune the projection horizons and debt sensitivity sweep.
type Options struct {
	ShortTermMonths int
	LongTermMonths  int
	InflationRate   float64
	ExtraAmounts    []float64
}

// DebtAnalysis bundles one debt's simulated schedule with its record.
type DebtAnalysis struct {
	Debt     finance.Debt  `json:"debt"`
	Schedule debt.Schedule `json:"schedule"`
}

// Report is the full derived analysis for one plan snapshot.
type Report struct {
	Breakdown        finance.MonthlyBreakdown    `json:"breakdown"`
	Allocation       finance.ActualAllocation    `json:"allocation"`
	SelectedStrategy string                      `json:"selectedStrategy,omitempty"`
	Recommended      *finance.RecommendedAmounts `json:"recommended,omitempty"`
	Categories       []finance.CategoryTotal     `json:"categories"`
	ShortTerm        []projection.ShortTermPoint `json:"shortTerm"`
	LongTerm         []projection.LongTermPoint  `json:"longTerm"`
	Debts            []DebtAnalysis              `json:"debts,omitempty"`
	Comparison       *debt.Comparison            `json:"comparison,omitempty"`
	Sensitivity      []debt.SensitivityPoint     `json:"sensitivity,omitempty"`
}

// Builder coordinates the calculation packages.
type Builder struct {
	simulator *debt.Simulator
	logger    *zap.Logger
}

// NewBuilder creates a report builder. A nil logger falls back to a no-op
// logger.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		simulator: debt.NewSimulator(logger),
		logger:    logger,
	}
}

// Build derives the full analysis for a snapshot. The snapshot is read only;
// every figure is computed fresh.
func (b *Builder) Build(data plan.Data, opts Options) Report {
	if opts.ShortTermMonths <= 0 {
		opts.ShortTermMonths = DefaultShortTermMonths
	}
	if opts.LongTermMonths <= 0 {
		opts.LongTermMonths = DefaultLongTermMonths
	}

	breakdown := finance.Summarize(data.Incomes, data.Expenses, data.Debts)
	rep := Report{
		Breakdown: breakdown,
		Allocation: finance.CalculateActualAllocation(data.Expenses,
			breakdown.TotalIncome, breakdown.TotalExpenses),
		SelectedStrategy: data.SelectedStrategy,
		Categories:       finance.GroupExpensesByCategory(data.Expenses),
		ShortTerm:        projection.ShortTerm(breakdown.AvailableSavings, opts.ShortTermMonths),
		LongTerm: projection.LongTerm(breakdown.AvailableSavings,
			opts.LongTermMonths, opts.InflationRate),
	}

	if data.SelectedStrategy != "" {
		if recommended, ok := strategy.Recommend(data.SelectedStrategy,
			data.CustomStrategy, breakdown.TotalIncome); ok {
			rep.Recommended = &recommended
		} else {
			b.logger.Warn("unknown strategy selected",
				zap.String("op", "report.Build"),
				zap.String("strategy", data.SelectedStrategy),
			)
		}
	}

	if len(data.Debts) > 0 {
		for _, d := range data.Debts {
			rep.Debts = append(rep.Debts, DebtAnalysis{
				Debt:     d,
				Schedule: b.simulator.GenerateSchedule(d),
			})
		}
		comparison := b.simulator.ComparePayoffStrategies(data.Debts)
		rep.Comparison = &comparison
		rep.Sensitivity = b.simulator.ExtraPaymentSensitivity(data.Debts, opts.ExtraAmounts)
	}

	return rep
}
