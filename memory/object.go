package memory

import (
	"reflect"
	"unsafe"

	"github.com/modern-go/reflect2"
)

// ReadObject fills *val with the raw bytes at gva in the address space
// rooted at cr3. val must be a non-nil pointer to a fixed-size value that
// holds no host pointers (integers, arrays, packed guest ABI structs).
func ReadObject(mem Physical, cr3 Gpa, gva Gva, val any) error {
	buf, err := objectBytes(val)
	if err != nil {
		return err
	}
	return ReadVirtual(mem, cr3, gva, buf)
}

// WriteObject stores the raw bytes of *val to gva. Same constraints on val
// as ReadObject.
func WriteObject(mem Physical, cr3 Gpa, gva Gva, val any) error {
	buf, err := objectBytes(val)
	if err != nil {
		return err
	}
	return WriteVirtual(mem, cr3, gva, buf)
}

func objectBytes(val any) ([]byte, error) {
	typ := reflect2.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return nil, ErrArgumentInvalid
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return nil, ErrArgumentInvalid
	}
	size := typ.Type1().Elem().Size()
	return unsafe.Slice((*byte)(ptr), size), nil
}
