package physical

import (
	"unsafe"

	"github.com/wnxd/microvmm/memory"
)

// Arena hands out page-aligned host buffers and keeps every allocation
// alive until Close. There is no per-allocation free: all records are
// dropped together when the arena is torn down, so a returned address stays
// valid exactly as long as the arena does.
type Arena struct {
	blocks map[uint64][]byte
}

func NewArena() *Arena {
	return &Arena{blocks: make(map[uint64][]byte)}
}

// Allocate reserves a host buffer of size bytes aligned to a 4KB boundary
// and returns its address. size must be non-zero; a zero size is a caller
// bug and panics.
func (a *Arena) Allocate(size uint64) uint64 {
	if size == 0 {
		panic("physical: zero-size arena allocation")
	}
	buf := make([]byte, size+memory.PageSize-1)
	addr := uint64(uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	aligned := memory.Align(addr, uint64(memory.PageSize))
	a.blocks[aligned] = buf[aligned-addr:][:size]
	return aligned
}

// Bytes returns the live buffer previously returned by Allocate, or nil if
// addr is unknown or the arena has been closed.
func (a *Arena) Bytes(addr uint64) []byte {
	return a.blocks[addr]
}

func (a *Arena) Len() int {
	return len(a.blocks)
}

// Close releases every allocation at once. The arena is empty afterwards
// and may not be allocated from again meaningfully; addresses obtained
// before Close must no longer be dereferenced.
func (a *Arena) Close() error {
	clear(a.blocks)
	return nil
}
