package memory

import "slices"

// Pointer is a guest virtual address bound to a backing store and an
// address space root, for walking guest data structures.
type Pointer struct {
	mem  Physical
	cr3  Gpa
	addr Gva
}

func ToPointer(mem Physical, cr3 Gpa, addr Gva) Pointer {
	return Pointer{mem, cr3, addr}
}

func (p Pointer) IsNil() bool {
	return p.addr == 0
}

func (p Pointer) Address() Gva {
	return p.addr
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.mem, p.cr3, p.addr + Gva(offset)}
}

func (p Pointer) Sub(offset uint64) Pointer {
	return Pointer{p.mem, p.cr3, p.addr - Gva(offset)}
}

func (p Pointer) Read(size uint64) ([]byte, error) {
	buf := make([]byte, size)
	if err := ReadVirtual(p.mem, p.cr3, p.addr, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p Pointer) Write(data []byte) error {
	return WriteVirtual(p.mem, p.cr3, p.addr, data)
}

// ReadString reads a NUL-terminated guest string.
func (p Pointer) ReadString() (string, error) {
	var data []byte
	var buf [0x10]byte
	size := uint64(len(buf))
	for begin := p.addr; ; begin += Gva(size) {
		err := ReadVirtual(p.mem, p.cr3, begin, buf[:])
		if err != nil {
			return "", err
		}
		i := slices.Index(buf[:], 0)
		if i == -1 {
			data = append(data, buf[:]...)
		} else {
			data = append(data, buf[:i]...)
			break
		}
	}
	return string(data), nil
}

// ReadPointer chases an 8-byte guest pointer stored at p.
func (p Pointer) ReadPointer() (Pointer, error) {
	addr, err := ReadVirtualUint64(p.mem, p.cr3, p.addr)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{p.mem, p.cr3, Gva(addr)}, nil
}

func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	return len(b), ReadVirtual(p.mem, p.cr3, p.addr+Gva(off), b)
}

func (p Pointer) WriteAt(b []byte, off int64) (n int, err error) {
	return len(b), WriteVirtual(p.mem, p.cr3, p.addr+Gva(off), b)
}
