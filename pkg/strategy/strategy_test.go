package strategy

import (
	"testing"

	"github.com/iwvelando/finance-planner/pkg/finance"
)

// Every catalog breakdown must sum to exactly 100. This is the
// construction-time validation the runtime deliberately skips.
func TestCatalogBreakdownsSumTo100(t *testing.T) {
	if len(Catalog) != 5 {
		t.Fatalf("expected 5 canonical strategies, got %d", len(Catalog))
	}
	for _, def := range Catalog {
		if def.Breakdown.Sum() != 100 {
			t.Errorf("strategy %s breakdown %+v sums to %d, expected 100",
				def.ID, def.Breakdown, def.Breakdown.Sum())
		}
		if def.NameKey == "" || def.DescriptionKey == "" {
			t.Errorf("strategy %s is missing localization keys", def.ID)
		}
	}
	if DefaultCustom.Sum() != 100 {
		t.Errorf("default custom strategy %+v does not sum to 100", DefaultCustom)
	}
}

func TestLookupTables(t *testing.T) {
	if len(Breakdowns) != len(Catalog) || len(SavingsPercents) != len(Catalog) {
		t.Fatal("lookup tables do not cover the catalog")
	}

	breakdown, ok := Breakdowns["50_30_20"]
	if !ok {
		t.Fatal("missing 50_30_20 breakdown")
	}
	if breakdown != (finance.SplitValues{Needs: 50, Wants: 30, Savings: 20}) {
		t.Errorf("50_30_20 breakdown = %+v", breakdown)
	}

	if SavingsPercents["aggressive_saving"] != 40 {
		t.Errorf("aggressive_saving savings percent = %d, expected 40",
			SavingsPercents["aggressive_saving"])
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("debt_payoff"); !ok {
		t.Error("expected debt_payoff in catalog")
	}
	if _, ok := Lookup("nonexistent"); ok {
		t.Error("unexpected catalog hit for nonexistent id")
	}
}

func TestBreakdownFor(t *testing.T) {
	custom := finance.SplitValues{Needs: 45, Wants: 25, Savings: 30}

	tests := []struct {
		name     string
		id       string
		expected finance.SplitValues
		ok       bool
	}{
		{"Catalog strategy", "balanced", finance.SplitValues{Needs: 40, Wants: 30, Savings: 30}, true},
		{"Custom sentinel", CustomID, custom, true},
		{"Unknown id", "nope", finance.SplitValues{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown, ok := BreakdownFor(tt.id, custom)

			if ok != tt.ok || breakdown != tt.expected {
				t.Errorf("BreakdownFor(%q) = %+v, %v; expected %+v, %v",
					tt.id, breakdown, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestRecommend(t *testing.T) {
	amounts, ok := Recommend("50_30_20", DefaultCustom, 5000)
	if !ok {
		t.Fatal("expected recommendation for 50_30_20")
	}
	if amounts.Needs != 2500 || amounts.Wants != 1500 || amounts.Savings != 1000 {
		t.Errorf("Recommend() = %+v, expected 2500/1500/1000", amounts)
	}

	if _, ok := Recommend("unknown", DefaultCustom, 5000); ok {
		t.Error("expected no recommendation for unknown strategy")
	}
}
