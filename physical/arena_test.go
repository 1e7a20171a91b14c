package physical_test

import (
	"testing"

	"github.com/wnxd/microvmm/memory"
	"github.com/wnxd/microvmm/physical"
)

func TestArenaAllocate(t *testing.T) {
	a := physical.NewArena()
	defer a.Close()

	for _, size := range []uint64{1, 0x1000, 0x1001, 0x10000} {
		addr := a.Allocate(size)
		if addr%memory.PageSize != 0 {
			t.Fatalf("Allocate(%#x) = %#x: not page aligned", size, addr)
		}
		buf := a.Bytes(addr)
		if uint64(len(buf)) != size {
			t.Fatalf("Bytes(%#x): len %d, want %d", addr, len(buf), size)
		}
	}
	if a.Len() != 4 {
		t.Fatalf("Len = %d, want 4", a.Len())
	}
}

func TestArenaBytesBacking(t *testing.T) {
	a := physical.NewArena()
	defer a.Close()

	addr := a.Allocate(memory.PageSize)
	a.Bytes(addr)[0x123] = 0x5a
	if got := a.Bytes(addr)[0x123]; got != 0x5a {
		t.Fatalf("view not backed: %#x", got)
	}
}

func TestArenaClose(t *testing.T) {
	a := physical.NewArena()
	addr := a.Allocate(0x2000)
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 0 {
		t.Fatalf("Len = %d after Close", a.Len())
	}
	if a.Bytes(addr) != nil {
		t.Fatal("allocation survived Close")
	}
}

func TestArenaZeroSize(t *testing.T) {
	a := physical.NewArena()
	defer a.Close()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	a.Allocate(0)
}

func TestArenaBacksStore(t *testing.T) {
	a := physical.NewArena()
	defer a.Close()

	addr := a.Allocate(memory.PageSize)
	buf := a.Bytes(addr)
	for i := range buf {
		buf[i] = byte(i)
	}
	s := physical.NewStore()
	if err := s.AddPage(0x8000, buf); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 4)
	if err := s.ReadPhysical(0x8100, got); err != nil {
		t.Fatal(err)
	}
	want := [4]byte{0x00, 0x01, 0x02, 0x03}
	if [4]byte(got) != want {
		t.Fatalf("got %x, want %x", got, want)
	}
}
