package tape_test

import (
	"os"
	"path/filepath"
	"testing"

	"sturgeon/internal/baudot"
	"sturgeon/internal/services/tape"
	"sturgeon/internal/store"
)

func TestRead_ReproducesKnownText(t *testing.T) {
	const msg = "WEATHER REPORT 0600: CLEAR."

	enc := baudot.NewCodec()
	codes, err := enc.EncodeAll([]byte(msg))
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}

	path := filepath.Join(t.TempDir(), "msg.tape")
	if err := os.WriteFile(path, baudot.Pack(codes), 0o600); err != nil {
		t.Fatalf("write tape: %v", err)
	}

	got, err := tape.New(store.NewFileStore()).Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != msg {
		t.Fatalf("want %q, got %q", msg, got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	svc := tape.New(store.NewFileStore())
	if _, err := svc.Read(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("want error for missing file")
	}
}
