package memory_test

import (
	"errors"
	"testing"

	"github.com/wnxd/microvmm/memory"
)

type listEntry struct {
	Flink uint64
	Blink uint64
	Tag   [4]byte
	Size  uint32
}

func TestObjectRoundTrip(t *testing.T) {
	s := newSpace(t)
	in := listEntry{
		Flink: 0xfffff800_00001000,
		Blink: 0xfffff800_00002000,
		Tag:   [4]byte{'P', 'r', 'o', 'c'},
		Size:  0x450,
	}
	if err := memory.WriteObject(s, testCR3, testGVA+0x80, &in); err != nil {
		t.Fatal(err)
	}
	var out listEntry
	if err := memory.ReadObject(s, testCR3, testGVA+0x80, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestObjectSpansPages(t *testing.T) {
	s := newSpace(t)
	mapPage(t, s, testGVA+memory.PageSize, 0x9000)
	in := listEntry{Flink: 1, Blink: 2, Size: 3}
	gva := testGVA + memory.PageSize - 8
	if err := memory.WriteObject(s, testCR3, gva, &in); err != nil {
		t.Fatal(err)
	}
	var out listEntry
	if err := memory.ReadObject(s, testCR3, gva, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestObjectArgument(t *testing.T) {
	s := newSpace(t)
	var v uint64
	if err := memory.ReadObject(s, testCR3, testGVA, v); !errors.Is(err, memory.ErrArgumentInvalid) {
		t.Fatalf("non-pointer: got %v", err)
	}
	if err := memory.ReadObject(s, testCR3, testGVA, nil); !errors.Is(err, memory.ErrArgumentInvalid) {
		t.Fatalf("nil: got %v", err)
	}
	if err := memory.ReadObject(s, testCR3, testGVA, (*uint64)(nil)); !errors.Is(err, memory.ErrArgumentInvalid) {
		t.Fatalf("nil pointer: got %v", err)
	}
}
