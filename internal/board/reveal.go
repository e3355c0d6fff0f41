package board

// Reveal returns the closed cells a flood fill from start would open, in
// the order it reaches them. start itself is not included; opening it is
// the caller's job. Mines, open cells and flagged cells are never
// returned, and only Empty cells are expanded further.
//
// The board is not modified; callers apply the result with OpenAll.
func (b *Board) Reveal(start int) []int {
	b.MustContain(start)

	seen := make([]bool, b.Len())
	seen[start] = true

	var opened []int
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, j := range b.Neighbors(i) {
			c := b.Cells[j]
			if seen[j] || c.Kind.IsMine() || c.Opened || c.Flagged {
				continue
			}
			seen[j] = true
			opened = append(opened, j)
			if c.Kind == Empty {
				stack = append(stack, j)
			}
		}
	}
	return opened
}
