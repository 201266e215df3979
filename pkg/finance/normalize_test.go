package finance

import (
	"math"
	"testing"
)

func TestToMonthly(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		frequency Frequency
		expected  float64
	}{
		{
			name:      "Annual salary",
			amount:    1200,
			frequency: FrequencyAnnual,
			expected:  100,
		},
		{
			name:      "Weekly paycheck",
			amount:    100,
			frequency: FrequencyWeekly,
			expected:  433.33,
		},
		{
			name:      "Biweekly paycheck",
			amount:    200,
			frequency: FrequencyBiweekly,
			expected:  433.33,
		},
		{
			name:      "Monthly passthrough",
			amount:    2500,
			frequency: FrequencyMonthly,
			expected:  2500,
		},
		{
			name:      "Unrecognized frequency passes through",
			amount:    2500,
			frequency: Frequency("quarterly"),
			expected:  2500,
		},
		{
			name:      "Zero amount",
			amount:    0,
			frequency: FrequencyAnnual,
			expected:  0,
		},
		{
			name:      "Negative amount passes through the formula",
			amount:    -1200,
			frequency: FrequencyAnnual,
			expected:  -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToMonthly(tt.amount, tt.frequency)

			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("ToMonthly(%v, %q) = %.4f, expected %.2f",
					tt.amount, tt.frequency, result, tt.expected)
			}
		})
	}
}

func TestToMonthlyIdentityForUnknownFrequencies(t *testing.T) {
	amounts := []float64{0, 1, -50, 1234.56, 99999}
	frequencies := []Frequency{FrequencyMonthly, "", "daily", "once", "MONTHLY"}

	for _, amount := range amounts {
		for _, frequency := range frequencies {
			if got := ToMonthly(amount, frequency); got != amount {
				t.Errorf("ToMonthly(%v, %q) = %v, expected identity", amount, frequency, got)
			}
		}
	}
}
