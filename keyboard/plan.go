package keyboard

import (
	"errors"
	"fmt"
)

var ErrPlanMismatch = errors.New("grid plan does not match items")

// GridPlan lists row widths from top to bottom.
type GridPlan []int

// Total is the number of items the plan covers.
func (p GridPlan) Total() int {
	total := 0
	for _, w := range p {
		total += w
	}
	return total
}

// RightToLeft swaps every consecutive pair so that rows rendered right to left
// read in input order. An odd tail stays last.
func RightToLeft[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for i := 0; i < len(items)/2; i++ {
		out = append(out, items[2*i+1], items[2*i])
	}
	if len(items)%2 != 0 {
		out = append(out, items[len(items)-1])
	}
	return out
}

// BackPlan lays out n paired items followed by a back item: two-wide rows for
// the pairs, then one-wide rows for the unpaired item (if any) and for back.
// The plan always covers n+1 items.
func BackPlan(n int) GridPlan {
	if n < 0 {
		n = 0
	}
	plan := make(GridPlan, 0, n/2+2)
	for i := 0; i < n/2; i++ {
		plan = append(plan, 2)
	}
	if n%2 != 0 {
		plan = append(plan, 1)
	}
	return append(plan, 1)
}

// ColumnPlan puts each of n items on its own row.
func ColumnPlan(n int) GridPlan {
	plan := make(GridPlan, 0, n)
	for i := 0; i < n; i++ {
		plan = append(plan, 1)
	}
	return plan
}

// PairPlan fills rows of two; an odd last item gets its own row.
func PairPlan(n int) GridPlan {
	plan := make(GridPlan, 0, (n+1)/2)
	for i := 0; i < n/2; i++ {
		plan = append(plan, 2)
	}
	if n%2 != 0 {
		plan = append(plan, 1)
	}
	return plan
}

// FixedPlan uses the widths as given.
func FixedPlan(widths ...int) GridPlan {
	return append(GridPlan(nil), widths...)
}

// Arrange cuts items into rows according to plan.
func Arrange[T any](plan GridPlan, items []T) ([][]T, error) {
	for i, w := range plan {
		if w <= 0 {
			return nil, fmt.Errorf("%w: row %d has width %d", ErrPlanMismatch, i, w)
		}
	}
	if plan.Total() != len(items) {
		return nil, fmt.Errorf("%w: plan covers %d, got %d", ErrPlanMismatch, plan.Total(), len(items))
	}
	rows := make([][]T, 0, len(plan))
	start := 0
	for _, w := range plan {
		rows = append(rows, items[start:start+w:start+w])
		start += w
	}
	return rows, nil
}
