// Package splitbar implements the interactive three-way percentage split.
//
// The needs/wants/savings triple is edited through one of two divider
// positions: divider1 sits between needs and wants at cumulative offset
// needs, divider2 between wants and savings at cumulative offset
// needs+wants. Every operation redistributes between two segments while
// holding the third fixed, which keeps the sum-to-100 invariant trivially
// preserved, and clamping keeps every segment at 1 or more.
package splitbar

import (
	"math"

	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
)

// Divider identifies which of the two split-bar dividers an edit applies to.
type Divider string

// The two dividers.
const (
	Divider1 Divider = "divider1" // between needs and wants
	Divider2 Divider = "divider2" // between wants and savings
)

// Normalize rescales an arbitrary triple so it sums to 100, rounding each
// segment independently. An all-zero input returns the zero triple, which
// signals "no data yet". Because the segments round independently the result
// can miss 100 by a point in rare cases; callers repairing legacy data accept
// that, and the interactive operations below never produce such a triple.
func Normalize(needs, wants, savings int) finance.SplitValues {
	total := needs + wants + savings
	if total == 0 {
		return finance.SplitValues{}
	}
	factor := float64(constants.SplitTotal) / float64(total)
	return finance.SplitValues{
		Needs:   int(math.Round(float64(needs) * factor)),
		Wants:   int(math.Round(float64(wants) * factor)),
		Savings: int(math.Round(float64(savings) * factor)),
	}
}

// FromDividerDrag computes the split that results from dragging a divider to
// an absolute position on the 0-100 percentage line. The caller converts the
// raw pointer position to a rounded percentage.
func FromDividerDrag(percent int, divider Divider, current finance.SplitValues) finance.SplitValues {
	if divider == Divider1 {
		return withDivider1At(percent, current)
	}
	return withDivider2At(percent, current)
}

// FromKeyboardNudge computes the split that results from moving a divider by
// delta (normally -1 or +1) relative to its current position. The clamping
// matches FromDividerDrag exactly.
func FromKeyboardNudge(delta int, divider Divider, current finance.SplitValues) finance.SplitValues {
	if divider == Divider1 {
		return withDivider1At(current.Needs+delta, current)
	}
	return withDivider2At(current.Needs+current.Wants+delta, current)
}

// withDivider1At places divider1, redistributing between needs and wants
// while savings stays fixed. The clamp range [1, 100-savings-1] guarantees
// needs >= 1 and wants >= 1.
func withDivider1At(position int, current finance.SplitValues) finance.SplitValues {
	needs := mathutil.Clamp(position, constants.MinSegmentPercent,
		constants.SplitTotal-current.Savings-constants.MinSegmentPercent)
	return finance.SplitValues{
		Needs:   needs,
		Wants:   constants.SplitTotal - needs - current.Savings,
		Savings: current.Savings,
	}
}

// withDivider2At places divider2 at a cumulative needs+wants position,
// redistributing between wants and savings while needs stays fixed. The
// clamp range [needs+1, 99] guarantees wants >= 1 and savings >= 1.
func withDivider2At(position int, current finance.SplitValues) finance.SplitValues {
	clamped := mathutil.Clamp(position, current.Needs+constants.MinSegmentPercent,
		constants.SplitTotal-constants.MinSegmentPercent)
	savings := constants.SplitTotal - clamped
	return finance.SplitValues{
		Needs:   current.Needs,
		Wants:   constants.SplitTotal - current.Needs - savings,
		Savings: savings,
	}
}
