package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighbors(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"top-left corner", 0, []int{1, 10, 11}},
		{"top-right corner", 9, []int{8, 18, 19}},
		{"bottom-left corner", 90, []int{80, 81, 91}},
		{"bottom-right corner", 99, []int{88, 89, 98}},
		{"top edge", 4, []int{3, 5, 13, 14, 15}},
		{"left edge", 10, []int{0, 1, 11, 20, 21}},
		{"right edge", 19, []int{8, 9, 18, 28, 29}},
		{"bottom edge", 95, []int{84, 85, 86, 94, 96}},
		{"interior", 55, []int{44, 45, 46, 54, 56, 64, 65, 66}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Standard.Neighbors(tt.index))
		})
	}
}

func TestNeighborsNeverWrap(t *testing.T) {
	g := Standard
	for i := range g.Len() {
		seen := map[int]bool{}
		for _, j := range g.Neighbors(i) {
			assert.True(t, g.Contains(j), "neighbor %d of %d is off the board", j, i)
			assert.False(t, seen[j], "neighbor %d of %d listed twice", j, i)
			assert.NotEqual(t, i, j)
			seen[j] = true

			assert.LessOrEqual(t, abs(g.Row(i)-g.Row(j)), 1, "%d -> %d jumps rows", i, j)
			assert.LessOrEqual(t, abs(g.Col(i)-g.Col(j)), 1, "%d -> %d wraps columns", i, j)
			assert.Contains(t, g.Neighbors(j), i, "neighbor relation must be symmetric")
		}
	}
}

func TestNeighborsCount(t *testing.T) {
	counts := map[int]int{}
	for i := range Standard.Len() {
		counts[len(Standard.Neighbors(i))]++
	}
	assert.Equal(t, map[int]int{3: 4, 5: 32, 8: 64}, counts)
}

func TestNeighborsOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Standard.Neighbors(-1) })
	assert.Panics(t, func() { Standard.Neighbors(100) })
}

func TestSafeZone(t *testing.T) {
	assert.ElementsMatch(t,
		[]int{44, 45, 46, 54, 55, 56, 64, 65, 66},
		Standard.SafeZone(55),
	)
	assert.Equal(t, 55, Standard.SafeZone(55)[0])
}

func TestIndexRoundTrip(t *testing.T) {
	g := Geometry{Rows: 4, Cols: 7}
	for i := range g.Len() {
		assert.Equal(t, i, g.Index(g.Row(i), g.Col(i)))
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
