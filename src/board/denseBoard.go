package board

/*
	Dense engine variant
	scans every coordinate of the field and counts live neighbours in a
	3x3 window, the classic full-grid approach. Same rules and edge
	handling as the sparse engine, useful as a cross-check and for
	small crowded fields.
*/

//NewDense creates an empty board driven by the dense engine
func NewDense(width int, height int) *Board {
	b := New(width, height)
	b.advance = advanceDense
	return b
}

func advanceDense(b *Board) {
	next := make(map[Point]struct{}, len(b.Occupied))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := Point{x, y}
			n := b.liveNeighbours(p)
			if n == 3 || (n == 2 && b.Alive(p)) {
				next[p] = struct{}{}
			}
		}
	}
	b.Occupied = next
}

//liveNeighbours counts the live cells adjacent to p
func (b *Board) liveNeighbours(p Point) int {
	live := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			//skip my position
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{p.X + dx, p.Y + dy}
			if !b.Contains(n) {
				continue
			}
			if b.Alive(n) {
				live++
			}
		}
	}
	return live
}
