package board

import "math/rand"

//Point is one grid coordinate
//comparable value type, used directly as a hash key
type Point struct {
	X int
	Y int
}

//Board is a bounded rectangular field holding the set of live cells
//Occupied never contains a coordinate outside [0,Width)x[0,Height)
type Board struct {
	Width    int
	Height   int
	Occupied map[Point]struct{}

	//advance can be redefined to swap the generation engine
	advance func(b *Board)
}

//New creates an empty board driven by the sparse engine
func New(width int, height int) *Board {
	return &Board{
		Width:    width,
		Height:   height,
		Occupied: map[Point]struct{}{},
		advance:  advanceSparse,
	}
}

//Alive reports whether the cell at p is live
func (b *Board) Alive(p Point) bool {
	_, ok := b.Occupied[p]
	return ok
}

//Population returns the live cell count
func (b *Board) Population() int {
	return len(b.Occupied)
}

//Contains reports whether p lies inside the field
func (b *Board) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Width && p.Y < b.Height
}

//Toggle inverses the cell at p
//coordinates outside the field are rejected
func (b *Board) Toggle(p Point) {
	if !b.Contains(p) {
		return
	}
	if b.Alive(p) {
		delete(b.Occupied, p)
	} else {
		b.Occupied[p] = struct{}{}
	}
}

//Clear kills all cells
func (b *Board) Clear() {
	b.Occupied = map[Point]struct{}{}
}

//Settle places live cells at the given coordinates
//coordinates outside the field are skipped
func (b *Board) Settle(points []Point) {
	for _, p := range points {
		if b.Contains(p) {
			b.Occupied[p] = struct{}{}
		}
	}
}

//Randomize repopulates the board with random cells
//draws area/4 coordinates with replacement, so duplicates collapse
//and the realized density stays a bit below a quarter
func (b *Board) Randomize() {
	b.Occupied = make(map[Point]struct{}, b.Width*b.Height/4)
	trials := b.Width * b.Height / 4
	for i := 0; i < trials; i++ {
		b.Occupied[Point{rand.Intn(b.Width), rand.Intn(b.Height)}] = struct{}{}
	}
}

//Advance replaces Occupied with the next generation
func (b *Board) Advance() {
	b.advance(b)
}

//advanceSparse computes the next generation by counting neighbours
//around live cells only, so the cost follows the population and not
//the field area
func advanceSparse(b *Board) {
	counts := make(map[Point]int, len(b.Occupied)*3)
	buf := make([]Point, 0, 8)
	for cell := range b.Occupied {
		buf = b.appendNeighbours(buf[:0], cell)
		for _, n := range buf {
			counts[n]++
		}
	}

	//cells that never appear as a neighbour keep an implicit count
	//of zero and die by omission
	next := make(map[Point]struct{}, len(b.Occupied))
	for cell, n := range counts {
		if n == 3 || (n == 2 && b.Alive(cell)) {
			next[cell] = struct{}{}
		}
	}
	b.Occupied = next
}

//appendNeighbours appends the grid-adjacent coordinates of p to buf
//the field edge is hard, boundary cells have fewer than 8 neighbours
func (b *Board) appendNeighbours(buf []Point, p Point) []Point {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{p.X + dx, p.Y + dy}
			if !b.Contains(n) {
				continue
			}
			buf = append(buf, n)
		}
	}
	return buf
}
