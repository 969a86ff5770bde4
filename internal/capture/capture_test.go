package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSON(t *testing.T) {
	data := []byte(`{"messages": [[165, 16, 2], [165, 16, 3]], "checks": [[253, 14], [90, 38]]}`)
	ds, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(ds.Messages) != 2 || len(ds.Checks) != 2 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
	if !bytes.Equal(ds.Messages[0], []byte{165, 16, 2}) {
		t.Fatalf("message 0 = %v", ds.Messages[0])
	}
	if !bytes.Equal(ds.Checks[1], []byte{90, 38}) {
		t.Fatalf("check 1 = %v", ds.Checks[1])
	}
}

func TestParseJSONRejectsOutOfRange(t *testing.T) {
	data := []byte(`{"messages": [[300]], "checks": [[1]]}`)
	if _, err := ParseJSON(data); err == nil {
		t.Fatalf("expected error for value out of byte range")
	}
}

func TestParseHexLines(t *testing.T) {
	data := []byte("# capture from serial sniffer\na5100207 fd0e\n\na5100208 5a26\n")
	ds, err := ParseHexLines(data)
	if err != nil {
		t.Fatalf("ParseHexLines: %v", err)
	}
	if len(ds.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(ds.Messages))
	}
	if !bytes.Equal(ds.Messages[0], []byte{0xA5, 0x10, 0x02, 0x07}) {
		t.Fatalf("message 0 = %x", ds.Messages[0])
	}
	if !bytes.Equal(ds.Checks[0], []byte{0xFD, 0x0E}) {
		t.Fatalf("check 0 = %x", ds.Checks[0])
	}
}

func TestParseHexLinesBadField(t *testing.T) {
	if _, err := ParseHexLines([]byte("a510\n")); err == nil {
		t.Fatalf("expected error for missing check field")
	}
	if _, err := ParseHexLines([]byte("zz a5\n")); err == nil {
		t.Fatalf("expected error for invalid hex")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "capture.json")
	if err := os.WriteFile(jsonPath, []byte(`{"messages": [[1]], "checks": [[2]]}`), 0644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	ds, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if len(ds.Messages) != 1 || ds.Checks[0][0] != 2 {
		t.Fatalf("unexpected dataset: %+v", ds)
	}

	hexPath := filepath.Join(dir, "capture.txt")
	if err := os.WriteFile(hexPath, []byte("0102 aa\n"), 0644); err != nil {
		t.Fatalf("write hex: %v", err)
	}
	ds, err = Load(hexPath)
	if err != nil {
		t.Fatalf("Load hex: %v", err)
	}
	if len(ds.Messages) != 1 || ds.Checks[0][0] != 0xAA {
		t.Fatalf("unexpected dataset: %+v", ds)
	}
}
