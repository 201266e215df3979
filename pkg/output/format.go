// Package output provides utilities for formatting and displaying plan reports.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-planner/internal/report"
	"github.com/iwvelando/finance-planner/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(rep report.Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Monthly breakdown ---\n")
	_, _ = p.Printf("Income          | %s\n", format.Currency(rep.Breakdown.TotalIncome))
	_, _ = p.Printf("Expenses        | %s\n", format.Currency(rep.Breakdown.TotalExpenses))
	_, _ = p.Printf("Debt payment    | %s\n", format.Currency(rep.Breakdown.TotalDebtPayment))
	_, _ = p.Printf("Available       | %s\n", format.Currency(rep.Breakdown.AvailableSavings))
	_, _ = p.Printf("Savings rate    | %s\n", format.Percent(rep.Breakdown.SavingsRate))

	fmt.Printf("\n--- Actual allocation ---\n")
	_, _ = p.Printf("Needs   | %s (%s)\n", format.Currency(rep.Allocation.NeedsAmount), format.Percent(rep.Allocation.NeedsPercent))
	_, _ = p.Printf("Wants   | %s (%s)\n", format.Currency(rep.Allocation.WantsAmount), format.Percent(rep.Allocation.WantsPercent))
	_, _ = p.Printf("Savings | %s (%s)\n", format.Currency(rep.Allocation.ActualSavings), format.Percent(rep.Allocation.SavingsPercent))

	if rep.Recommended != nil {
		fmt.Printf("\n--- Recommended (%s) ---\n", rep.SelectedStrategy)
		_, _ = p.Printf("Needs   | %s\n", format.Currency(rep.Recommended.Needs))
		_, _ = p.Printf("Wants   | %s\n", format.Currency(rep.Recommended.Wants))
		_, _ = p.Printf("Savings | %s\n", format.Currency(rep.Recommended.Savings))
	}

	if len(rep.Categories) > 0 {
		fmt.Printf("\n--- Expenses by category ---\n")
		for _, group := range rep.Categories {
			_, _ = p.Printf("%-15s | %s\n", group.Category, format.Currency(group.Value))
		}
	}

	if rep.Comparison != nil {
		fmt.Printf("\n--- Debt payoff comparison ---\n")
		_, _ = p.Printf("Avalanche | %d months, %s interest\n",
			rep.Comparison.Avalanche.Months, format.Currency(rep.Comparison.Avalanche.TotalInterest))
		_, _ = p.Printf("Snowball  | %d months, %s interest\n",
			rep.Comparison.Snowball.Months, format.Currency(rep.Comparison.Snowball.TotalInterest))
		_, _ = p.Printf("Avalanche saves %s and %d months\n",
			format.Currency(rep.Comparison.InterestSaved), rep.Comparison.MonthsSaved)
	}

	if len(rep.Sensitivity) > 0 {
		fmt.Printf("\n--- Extra payment sensitivity ---\n")
		for _, point := range rep.Sensitivity {
			_, _ = p.Printf("+%s/month | %d months, %s interest\n",
				format.Currency(point.Extra), point.Months, format.Currency(point.TotalInterest))
		}
	}
}

// CsvFormat outputs the savings projection in comma-separated value format.
func CsvFormat(rep report.Report) {
	fmt.Print(CsvString(rep))
}

// CsvString builds the savings projection as a CSV document.
func CsvString(rep report.Report) string {
	var builder strings.Builder
	builder.WriteString(`"month","savings","cumulative","realValue"` + "\n")
	for _, point := range rep.LongTerm {
		builder.WriteString(fmt.Sprintf(`"%d","%.2f","%.2f","%.2f"`+"\n",
			point.Month, point.Savings, point.Cumulative, point.RealValue))
	}
	return builder.String()
}
