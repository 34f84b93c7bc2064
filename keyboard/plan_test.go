package keyboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRightToLeft(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{}, []string{}},
		{[]string{"A"}, []string{"A"}},
		{[]string{"A", "B"}, []string{"B", "A"}},
		{[]string{"A", "B", "C"}, []string{"B", "A", "C"}},
		{[]string{"A", "B", "C", "D"}, []string{"B", "A", "D", "C"}},
		{[]string{"A", "B", "C", "D", "E"}, []string{"B", "A", "D", "C", "E"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, RightToLeft(tt.in), "RightToLeft(%v)", tt.in)
	}
}

func TestRightToLeftDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3, 4}
	_ = RightToLeft(in)
	require.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestRightToLeftInvolutionOnEven(t *testing.T) {
	for n := 0; n <= 20; n += 2 {
		in := make([]int, n)
		for i := range in {
			in[i] = i
		}
		require.Equal(t, in, RightToLeft(RightToLeft(in)), "n=%d", n)
	}
}

func TestBackPlan(t *testing.T) {
	tests := []struct {
		n    int
		want GridPlan
	}{
		{0, GridPlan{1}},
		{1, GridPlan{1, 1}},
		{2, GridPlan{2, 1}},
		{3, GridPlan{2, 1, 1}},
		{4, GridPlan{2, 2, 1}},
		{7, GridPlan{2, 2, 2, 1, 1}},
		{8, GridPlan{2, 2, 2, 2, 1}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BackPlan(tt.n), "BackPlan(%d)", tt.n)
	}
}

func TestBackPlanCoversItemsAndBack(t *testing.T) {
	for n := 0; n <= 50; n++ {
		plan := BackPlan(n)
		require.Equal(t, n+1, plan.Total(), "n=%d", n)
		for _, w := range plan {
			require.Contains(t, []int{1, 2}, w)
		}
	}
}

func TestBackPlanOddLeavesLastTwoAlone(t *testing.T) {
	for n := 1; n <= 21; n += 2 {
		plan := BackPlan(n)
		require.Equal(t, GridPlan{1, 1}, plan[len(plan)-2:], "n=%d", n)
	}
}

func TestColumnAndPairPlan(t *testing.T) {
	require.Empty(t, ColumnPlan(0))
	require.Equal(t, GridPlan{1, 1, 1}, ColumnPlan(3))
	require.Empty(t, PairPlan(0))
	require.Equal(t, GridPlan{2, 2}, PairPlan(4))
	require.Equal(t, GridPlan{2, 2, 1}, PairPlan(5))
	require.Equal(t, GridPlan{1, 2, 2, 1}, FixedPlan(1, 2, 2, 1))
}

func TestArrange(t *testing.T) {
	rows, err := Arrange(GridPlan{2, 1, 1}, []string{"B", "A", "C", "back"})
	require.NoError(t, err)
	require.Equal(t, [][]string{{"B", "A"}, {"C"}, {"back"}}, rows)

	_, err = Arrange(GridPlan{2, 2}, []string{"A", "B", "C"})
	require.ErrorIs(t, err, ErrPlanMismatch)

	_, err = Arrange(GridPlan{3, -1}, []string{"A", "B"})
	require.ErrorIs(t, err, ErrPlanMismatch)

	_, err = Arrange(GridPlan{0, 1}, []string{"A"})
	require.ErrorIs(t, err, ErrPlanMismatch)
}

func TestArrangeRowsDoNotAlias(t *testing.T) {
	items := []string{"A", "B", "C"}
	rows, err := Arrange(GridPlan{2, 1}, items)
	require.NoError(t, err)
	rows[0] = append(rows[0], "X")
	require.Equal(t, "C", items[2])
}

func ExampleBackPlan() {
	fmt.Println(BackPlan(8))
	fmt.Println(BackPlan(3))
	// Output:
	// [2 2 2 2 1]
	// [2 1 1]
}
