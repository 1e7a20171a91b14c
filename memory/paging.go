package memory

// x86-64 4-level paging layout. Intel SDM Vol. 3A, 4.5.
const (
	PageShift = 12
	PageSize  = 1 << PageShift
	PageMask  = PageSize - 1

	tableIndexBits = 9
	tableIndexMask = 1<<tableIndexBits - 1
	entrySize      = 8

	pml4Shift = PageShift + 3*tableIndexBits // GVA bits 47:39
	pdptShift = PageShift + 2*tableIndexBits // GVA bits 38:30
	pdShift   = PageShift + 1*tableIndexBits // GVA bits 29:21
	ptShift   = PageShift                    // GVA bits 20:12

	// entry bits checked by the walk
	entryPresent  = 1 << 0
	entryPageSize = 1 << 7 // PS, valid at PDPTE and PDE levels only

	// canonical physical addresses are at most 52 bits
	physAddrMask = 0x000f_ffff_ffff_ffff

	page1GBMask = 1<<30 - 1 // GVA passthrough for a 1GB PDPTE mapping
	page2MBMask = 1<<21 - 1 // GVA passthrough for a 2MB PDE mapping
)

func pml4Index(gva Gva) Gpa {
	return Gpa(gva) >> pml4Shift & tableIndexMask
}

func pdptIndex(gva Gva) Gpa {
	return Gpa(gva) >> pdptShift & tableIndexMask
}

func pdIndex(gva Gva) Gpa {
	return Gpa(gva) >> pdShift & tableIndexMask
}

func ptIndex(gva Gva) Gpa {
	return Gpa(gva) >> ptShift & tableIndexMask
}

// entryBase extracts the table or page base referenced by a paging entry,
// clearing the low flag bits and everything above the physical limit.
func entryBase(entry uint64) Gpa {
	return Gpa(entry &^ PageMask & physAddrMask)
}
