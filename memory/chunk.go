package memory

import (
	"iter"
	"math"
)

// Chunks splits [addr, addr+size) into consecutive sub-ranges that each lie
// within a single 4KB page: the first starts at addr, every later one at a
// page base, and the lengths sum to size. The sequence is lazy and may be
// ranged more than once. addr+size must not overflow.
func Chunks(addr Gva, size uint64) iter.Seq2[Gva, uint64] {
	if size > math.MaxUint64-uint64(addr) {
		panic("memory: chunk range overflows the address space")
	}
	return func(yield func(Gva, uint64) bool) {
		for base, remaining := addr, size; remaining > 0; {
			n := min(remaining, PageSize-PageOffset(uint64(base)))
			if !yield(base, n) {
				return
			}
			base += Gva(n)
			remaining -= n
		}
	}
}
