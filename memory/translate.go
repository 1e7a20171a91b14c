package memory

import "encoding/binary"

// Translate walks the 4-level paging hierarchy rooted at cr3 and resolves
// gva to a guest physical address. It is stateless: cr3 selects the address
// space per call, so one store can serve any number of guests. Present-bit
// failures return the sentinel for the failing level; a table read that hits
// a page absent from mem propagates the store's own error.
func Translate(mem Physical, cr3 Gpa, gva Gva) (Gpa, error) {
	pml4e, err := ReadPhysicalUint64(mem, entryBase(uint64(cr3))+pml4Index(gva)*entrySize)
	if err != nil {
		return 0, err
	}
	if pml4e&entryPresent == 0 {
		return 0, ErrPML4ENotPresent
	}

	pdpte, err := ReadPhysicalUint64(mem, entryBase(pml4e)+pdptIndex(gva)*entrySize)
	if err != nil {
		return 0, err
	}
	if pdpte&entryPresent == 0 {
		return 0, ErrPDPTENotPresent
	}
	if pdpte&entryPageSize != 0 {
		// 1GB page, PD and PT levels are skipped
		return entryBase(pdpte) + Gpa(gva)&page1GBMask, nil
	}

	pde, err := ReadPhysicalUint64(mem, entryBase(pdpte)+pdIndex(gva)*entrySize)
	if err != nil {
		return 0, err
	}
	if pde&entryPresent == 0 {
		return 0, ErrPDENotPresent
	}
	if pde&entryPageSize != 0 {
		// 2MB page, PT level is skipped
		return entryBase(pde) + Gpa(gva)&page2MBMask, nil
	}

	pte, err := ReadPhysicalUint64(mem, entryBase(pde)+ptIndex(gva)*entrySize)
	if err != nil {
		return 0, err
	}
	if pte&entryPresent == 0 {
		return 0, ErrPTENotPresent
	}
	return entryBase(pte) + Gpa(PageOffset(uint64(gva))), nil
}

// ReadPhysicalUint64 reads a little-endian uint64 at gpa. The access must
// not span a page; paging entries are naturally aligned so the walk never
// does.
func ReadPhysicalUint64(mem Physical, gpa Gpa) (uint64, error) {
	var buf [8]byte
	if err := mem.ReadPhysical(gpa, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func ReadPhysicalUint32(mem Physical, gpa Gpa) (uint32, error) {
	var buf [4]byte
	if err := mem.ReadPhysical(gpa, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func ReadPhysicalUint16(mem Physical, gpa Gpa) (uint16, error) {
	var buf [2]byte
	if err := mem.ReadPhysical(gpa, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func ReadPhysicalUint8(mem Physical, gpa Gpa) (uint8, error) {
	var buf [1]byte
	if err := mem.ReadPhysical(gpa, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadVirtual fills buf from guest virtual memory starting at gva,
// translating each page-bounded chunk through the tables rooted at cr3.
// Chunks are transferred in address order; the first failing chunk aborts
// the call and bytes already copied for earlier chunks are kept.
func ReadVirtual(mem Physical, cr3 Gpa, gva Gva, buf []byte) error {
	var off uint64
	for addr, n := range Chunks(gva, uint64(len(buf))) {
		gpa, err := Translate(mem, cr3, addr)
		if err != nil {
			return err
		}
		if err := mem.ReadPhysical(gpa, buf[off:off+n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// WriteVirtual stores data to guest virtual memory starting at gva. Failure
// semantics match ReadVirtual: chunks already written stay written.
func WriteVirtual(mem Physical, cr3 Gpa, gva Gva, data []byte) error {
	var off uint64
	for addr, n := range Chunks(gva, uint64(len(data))) {
		gpa, err := Translate(mem, cr3, addr)
		if err != nil {
			return err
		}
		if err := mem.WritePhysical(gpa, data[off:off+n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

func ReadVirtualUint64(mem Physical, cr3 Gpa, gva Gva) (uint64, error) {
	var buf [8]byte
	if err := ReadVirtual(mem, cr3, gva, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func ReadVirtualUint32(mem Physical, cr3 Gpa, gva Gva) (uint32, error) {
	var buf [4]byte
	if err := ReadVirtual(mem, cr3, gva, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func ReadVirtualUint16(mem Physical, cr3 Gpa, gva Gva) (uint16, error) {
	var buf [2]byte
	if err := ReadVirtual(mem, cr3, gva, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func ReadVirtualUint8(mem Physical, cr3 Gpa, gva Gva) (uint8, error) {
	var buf [1]byte
	if err := ReadVirtual(mem, cr3, gva, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
