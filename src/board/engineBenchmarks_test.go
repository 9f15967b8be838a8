package board

import (
	"sort"
	"testing"
)

const (
	benchWidth  = 200
	benchHeight = 200
)

func engineNames() (names []string) {
	names = make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Advance(b *testing.B) {
	for _, name := range engineNames() {
		b.Run(name, func(b *testing.B) {
			brd := engines[name](benchWidth, benchHeight)
			brd.Randomize()
			seed := occupiedSet(brd)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				brd.Advance()
				if brd.Population() == 0 {
					b.StopTimer()
					brd.Occupied = seed
					seed = occupiedSet(brd)
					b.StartTimer()
				}
			}
		})
	}
}

func Benchmark_Randomize(b *testing.B) {
	brd := New(benchWidth, benchHeight)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		brd.Randomize()
	}
}
