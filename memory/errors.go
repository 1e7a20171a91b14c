package memory

import (
	"errors"
	"fmt"
)

var (
	ErrPML4ENotPresent = errors.New("pml4e not present")
	ErrPDPTENotPresent = errors.New("pdpte not present")
	ErrPDENotPresent   = errors.New("pde not present")
	ErrPTENotPresent   = errors.New("pte not present")
	ErrSpanningPage    = errors.New("physical access spans page boundary")
	ErrArgumentInvalid = errors.New("argument invalid")
)

// MissingPageError reports a physical access to a page absent from the
// backing store.
type MissingPageError struct {
	base Gpa
}

func NewMissingPageError(gpa Gpa) *MissingPageError {
	return &MissingPageError{base: PageBase(gpa)}
}

func (e *MissingPageError) Error() string {
	return fmt.Sprintf("[MissingPage] base: %016X", uint64(e.base))
}

// Base returns the 4KB-aligned address of the missing page.
func (e *MissingPageError) Base() Gpa {
	return e.base
}
