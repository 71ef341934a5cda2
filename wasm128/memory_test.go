package wasm128

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// copyModule exports one page of memory and
//
//	(func (export "copy16") (param $dst i32) (param $src i32)
//	  (v128.store align=1 (local.get $dst)
//	    (v128.load align=1 (local.get $src))))
var copyModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type: (i32, i32) -> ()
	0x01, 0x06, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x00,
	// function 0 has type 0
	0x03, 0x02, 0x01, 0x00,
	// memory: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// exports: "memory", "copy16"
	0x07, 0x13, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x06, 0x63, 0x6f, 0x70, 0x79, 0x31, 0x36, 0x00, 0x00,
	// code
	0x0a, 0x10, 0x01, 0x0e, 0x00,
	0x20, 0x00, // local.get 0
	0x20, 0x01, // local.get 1
	0xfd, 0x00, 0x00, 0x00, // v128.load align=0 offset=0
	0xfd, 0x0b, 0x00, 0x00, // v128.store align=0 offset=0
	0x0b,
}

func instantiate(t *testing.T) api.Module {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	mod, err := rt.Instantiate(ctx, copyModule)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	return mod
}

func TestGuestLoadStore(t *testing.T) {
	mod := instantiate(t)
	mem := mod.Memory()

	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(0xa0 + i)
	}
	if !mem.Write(3, src) {
		t.Fatal("memory write failed")
	}

	v, err := LoadGuest(mem, 3)
	if err != nil {
		t.Fatalf("LoadGuest: %v", err)
	}
	for i, b := range v {
		if b != src[i] {
			t.Fatalf("LoadGuest lane %d = %#x, want %#x", i, b, src[i])
		}
	}

	if err := StoreGuest(mem, 101, v); err != nil {
		t.Fatalf("StoreGuest: %v", err)
	}
	got, ok := mem.Read(101, 16)
	if !ok || string(got) != string(src) {
		t.Errorf("StoreGuest wrote %x, want %x", got, src)
	}
}

func TestGuestMatchesWasmCopy(t *testing.T) {
	ctx := context.Background()
	mod := instantiate(t)
	mem := mod.Memory()

	for i := uint32(0); i < 64; i++ {
		mem.WriteByte(i, byte(i*7))
	}

	// The guest copies 16 bytes from 5 to 33 with its own unaligned v128
	// instructions; the host does the same from 5 to 49.
	if _, err := mod.ExportedFunction("copy16").Call(ctx, 33, 5); err != nil {
		t.Fatalf("copy16: %v", err)
	}
	v, err := LoadGuest(mem, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := StoreGuest(mem, 49, v); err != nil {
		t.Fatal(err)
	}

	guest, _ := mem.Read(33, 16)
	host, _ := mem.Read(49, 16)
	if string(guest) != string(host) {
		t.Errorf("guest copy %x differs from host copy %x", guest, host)
	}
}

func TestGuestOutOfRange(t *testing.T) {
	mem := instantiate(t).Memory()
	end := mem.Size()

	if _, err := LoadGuest(mem, end-15); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("LoadGuest at end-15 = %v, want ErrOutOfRange", err)
	}
	if err := StoreGuest(mem, end, V128{}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("StoreGuest at end = %v, want ErrOutOfRange", err)
	}
	if _, err := LoadGuest(mem, end-16); err != nil {
		t.Errorf("LoadGuest at end-16 = %v", err)
	}
	if _, err := GuestRef[[4]uint32](mem, end-8); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("GuestRef at end-8 = %v, want ErrOutOfRange", err)
	}
}

func TestGuestRef(t *testing.T) {
	mem := instantiate(t).Memory()

	words, err := GuestRef[[4]uint32](mem, 64)
	if err != nil {
		t.Fatalf("GuestRef[[4]uint32] at 64: %v", err)
	}
	words[2] = 0xcafef00d
	if got, _ := mem.ReadUint32Le(72); got != 0xcafef00d {
		t.Errorf("write through GuestRef not visible: %#x", got)
	}

	if _, err := GuestRef[[4]uint32](mem, 65); !errors.Is(err, ErrMisaligned) {
		t.Errorf("GuestRef[[4]uint32] at 65 = %v, want ErrMisaligned", err)
	}

	raw, err := GuestRef[[16]uint8](mem, 65)
	if err != nil {
		t.Fatalf("GuestRef[[16]uint8] at 65: %v", err)
	}
	v := V128Load(raw)
	if got := As[[16]uint8](v); got[7] != 0x0d || got[8] != 0xf0 {
		t.Errorf("V128Load through GuestRef = %x", got)
	}
}
