package physical

import "github.com/wnxd/microvmm/memory"

// Store is a sparse guest physical memory backing: page-aligned base
// address to owned 4KB page. Pages come and go only through AddPage and
// RemovePage; a translation or transfer never populates the map. Store does
// no locking, sharing one across goroutines needs external synchronization.
type Store struct {
	pages map[memory.Gpa]*[memory.PageSize]byte
}

func NewStore() *Store {
	return &Store{pages: make(map[memory.Gpa]*[memory.PageSize]byte)}
}

// AddPage copies contents in as the page containing gpa, replacing any
// existing page at that base. contents must be exactly one page.
func (s *Store) AddPage(gpa memory.Gpa, contents []byte) error {
	if len(contents) != memory.PageSize {
		return memory.ErrArgumentInvalid
	}
	page := new([memory.PageSize]byte)
	copy(page[:], contents)
	s.pages[memory.PageBase(gpa)] = page
	return nil
}

// RemovePage drops the page containing gpa, if present.
func (s *Store) RemovePage(gpa memory.Gpa) {
	delete(s.pages, memory.PageBase(gpa))
}

func (s *Store) Contains(gpa memory.Gpa) bool {
	_, ok := s.pages[memory.PageBase(gpa)]
	return ok
}

func (s *Store) Len() int {
	return len(s.pages)
}

// ReadPhysical copies out of a single page. The access must not cross a
// page boundary: spanning callers go through memory.ReadVirtual, which
// pre-splits.
func (s *Store) ReadPhysical(gpa memory.Gpa, buf []byte) error {
	off := memory.PageOffset(uint64(gpa))
	if off+uint64(len(buf)) > memory.PageSize {
		return memory.ErrSpanningPage
	}
	base := memory.PageBase(gpa)
	page, ok := s.pages[base]
	if !ok {
		return memory.NewMissingPageError(base)
	}
	copy(buf, page[off:off+uint64(len(buf))])
	return nil
}

// WritePhysical copies into a single page. A missing page is an error, the
// same as for reads; the store never allocates on access.
func (s *Store) WritePhysical(gpa memory.Gpa, data []byte) error {
	off := memory.PageOffset(uint64(gpa))
	if off+uint64(len(data)) > memory.PageSize {
		return memory.ErrSpanningPage
	}
	base := memory.PageBase(gpa)
	page, ok := s.pages[base]
	if !ok {
		return memory.NewMissingPageError(base)
	}
	copy(page[off:off+uint64(len(data))], data)
	return nil
}
