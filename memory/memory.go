package memory

// Gva is a guest virtual address, as seen by software running inside the
// virtual machine.
type Gva uint64

// Gpa is a guest physical address.
type Gpa uint64

// Physical is the capability a backing store must supply. Everything else
// in this package is derived from these two primitives. Implementations may
// reject accesses that cross a page boundary with ErrSpanningPage; callers
// wanting arbitrary spans go through ReadVirtual/WriteVirtual, which
// pre-split via Chunks.
type Physical interface {
	ReadPhysical(gpa Gpa, buf []byte) error
	WritePhysical(gpa Gpa, data []byte) error
}

// PageBase returns the 4KB-aligned base of the page containing gpa.
func PageBase(gpa Gpa) Gpa {
	return gpa &^ PageMask
}

// PageOffset returns the offset of addr within its 4KB page.
func PageOffset(addr uint64) uint64 {
	return addr & PageMask
}
