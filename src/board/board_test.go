package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var engines = map[string]func(width int, height int) *Board{
	"sparse": New,
	"dense":  NewDense,
}

func TestEmptyBoardStaysEmpty(t *testing.T) {
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(10, 10)
			b.Advance()
			assert.Empty(t, b.Occupied)
		})
	}
}

func TestLonelyCellDies(t *testing.T) {
	//corners, edges and the middle all behave the same
	positions := []Point{
		{0, 0}, {9, 0}, {0, 7}, {9, 7},
		{5, 0}, {0, 4}, {9, 4}, {5, 7},
		{4, 3},
	}
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			for _, p := range positions {
				b := newBoard(10, 8)
				b.Settle([]Point{p})
				b.Advance()
				assert.Empty(t, b.Occupied, "cell at %v should die", p)
			}
		})
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Point{{3, 3}, {3, 4}, {4, 3}, {4, 4}}
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(10, 10)
			b.Settle(block)
			before := occupiedSet(b)
			b.Advance()
			assert.Equal(t, before, occupiedSet(b))
		})
	}
}

func TestBlinkerOscillates(t *testing.T) {
	blinker := []Point{{4, 5}, {5, 5}, {6, 5}}
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(12, 12)
			b.Settle(blinker)
			seed := occupiedSet(b)

			b.Advance()
			vertical := occupiedSet(b)
			assert.Equal(t, pointSet(Point{5, 4}, Point{5, 5}, Point{5, 6}), vertical)

			b.Advance()
			assert.Equal(t, seed, occupiedSet(b))
		})
	}
}

func TestBirthOnExactlyThreeNeighbours(t *testing.T) {
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(10, 10)
			b.Settle([]Point{{2, 2}, {4, 2}, {3, 3}})
			b.Advance()
			assert.True(t, b.Alive(Point{3, 2}), "dead cell with 3 neighbours must be born")
		})
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(10, 10)
			//center cell with 4 neighbours
			b.Settle([]Point{{3, 3}, {2, 2}, {4, 2}, {2, 4}, {4, 4}})
			b.Advance()
			assert.False(t, b.Alive(Point{3, 3}))
		})
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	for name, newBoard := range engines {
		t.Run(name, func(t *testing.T) {
			b := newBoard(12, 7)
			b.Randomize()
			for i := 0; i < 20; i++ {
				b.Advance()
				for p := range b.Occupied {
					require.True(t, b.Contains(p), "advance produced %v outside the field", p)
				}
			}
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	sparse := New(25, 18)
	sparse.Randomize()
	dense := NewDense(25, 18)
	dense.Occupied = occupiedSet(sparse)

	for i := 0; i < 30; i++ {
		sparse.Advance()
		dense.Advance()
		require.Equal(t, occupiedSet(sparse), occupiedSet(dense), "generation %d", i+1)
	}
}

func TestRandomize(t *testing.T) {
	b := New(20, 10)
	b.Randomize()
	assert.NotZero(t, b.Population())
	assert.LessOrEqual(t, b.Population(), 20*10/4)
	for p := range b.Occupied {
		require.True(t, b.Contains(p))
	}
}

func TestToggle(t *testing.T) {
	b := New(5, 5)
	p := Point{2, 3}

	b.Toggle(p)
	assert.True(t, b.Alive(p))
	b.Toggle(p)
	assert.False(t, b.Alive(p))

	//out of range coordinates are rejected
	b.Toggle(Point{-1, 0})
	b.Toggle(Point{5, 5})
	assert.Empty(t, b.Occupied)
}

func occupiedSet(b *Board) map[Point]struct{} {
	set := make(map[Point]struct{}, len(b.Occupied))
	for p := range b.Occupied {
		set[p] = struct{}{}
	}
	return set
}

func pointSet(points ...Point) map[Point]struct{} {
	set := make(map[Point]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return set
}
