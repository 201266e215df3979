// Package strategy maintains the catalog of savings-allocation strategies
// and maps their breakdowns onto income figures.
package strategy

import "github.com/iwvelando/finance-planner/pkg/finance"

// CustomID is the pseudo-strategy id that resolves to the user's own
// breakdown rather than a catalog entry.
const CustomID = "custom"

// Definition is a static catalog entry. Name and description are i18n keys
// resolved by the presentation layer.
type Definition struct {
	ID             string              `json:"id"`
	NameKey        string              `json:"nameKey"`
	DescriptionKey string              `json:"descriptionKey"`
	Breakdown      finance.SplitValues `json:"breakdown"`
}

// Catalog holds the canonical strategies in display order. Every breakdown
// sums to exactly 100; this is validated by tests, not at runtime.
var Catalog = []Definition{
	{
		ID:             "50_30_20",
		NameKey:        "strategy.50_30_20.name",
		DescriptionKey: "strategy.50_30_20.description",
		Breakdown:      finance.SplitValues{Needs: 50, Wants: 30, Savings: 20},
	},
	{
		ID:             "pay_yourself_first",
		NameKey:        "strategy.pay_yourself_first.name",
		DescriptionKey: "strategy.pay_yourself_first.description",
		Breakdown:      finance.SplitValues{Needs: 70, Wants: 10, Savings: 20},
	},
	{
		ID:             "aggressive_saving",
		NameKey:        "strategy.aggressive_saving.name",
		DescriptionKey: "strategy.aggressive_saving.description",
		Breakdown:      finance.SplitValues{Needs: 40, Wants: 20, Savings: 40},
	},
	{
		ID:             "balanced",
		NameKey:        "strategy.balanced.name",
		DescriptionKey: "strategy.balanced.description",
		Breakdown:      finance.SplitValues{Needs: 40, Wants: 30, Savings: 30},
	},
	{
		ID:             "debt_payoff",
		NameKey:        "strategy.debt_payoff.name",
		DescriptionKey: "strategy.debt_payoff.description",
		Breakdown:      finance.SplitValues{Needs: 55, Wants: 35, Savings: 10},
	},
}

// DefaultCustom is the breakdown a plan starts with before the user adjusts
// the split bar.
var DefaultCustom = finance.SplitValues{Needs: 50, Wants: 30, Savings: 20}

// Breakdowns indexes catalog breakdowns by strategy id.
var Breakdowns = func() map[string]finance.SplitValues {
	m := make(map[string]finance.SplitValues, len(Catalog))
	for _, def := range Catalog {
		m[def.ID] = def.Breakdown
	}
	return m
}()

// SavingsPercents indexes just the savings percentage by strategy id, for
// callers that only need the savings figure.
var SavingsPercents = func() map[string]int {
	m := make(map[string]int, len(Catalog))
	for _, def := range Catalog {
		m[def.ID] = def.Breakdown.Savings
	}
	return m
}()

// Lookup returns the catalog definition for an id.
func Lookup(id string) (Definition, bool) {
	for _, def := range Catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// BreakdownFor resolves a selected strategy id to its breakdown. The
// CustomID sentinel resolves to the supplied custom breakdown. Unknown ids
// report false.
func BreakdownFor(id string, custom finance.SplitValues) (finance.SplitValues, bool) {
	if id == CustomID {
		return custom, true
	}
	breakdown, ok := Breakdowns[id]
	return breakdown, ok
}

// Recommend produces the recommended dollar amounts for a selected strategy
// at the given monthly income. Unknown ids report false with zero amounts.
func Recommend(id string, custom finance.SplitValues, totalIncome float64) (finance.RecommendedAmounts, bool) {
	breakdown, ok := BreakdownFor(id, custom)
	if !ok {
		return finance.RecommendedAmounts{}, false
	}
	return finance.CalculateRecommendedAmounts(totalIncome, breakdown), true
}
