package crcengine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogForWidths(t *testing.T) {
	for _, width := range Widths {
		entries := CatalogFor(width)
		if len(entries) == 0 {
			t.Fatalf("no catalog entries for width %d", width)
		}
		for _, e := range entries {
			if e.Width != width {
				t.Errorf("entry %+v filed under width %d", e, width)
			}
			if e.Poly == 0 || e.Poly > Mask(width) {
				t.Errorf("entry %+v has polynomial out of range", e)
			}
		}
	}
	if got := CatalogFor(24); got != nil {
		t.Fatalf("expected nil catalog for unsupported width, got %d entries", len(got))
	}
}

func TestCatalogForReturnsCopy(t *testing.T) {
	first := CatalogFor(16)
	first[0].Poly = 0xDEAD
	if second := CatalogFor(16); second[0].Poly == 0xDEAD {
		t.Fatalf("caller mutation reached the backing catalog")
	}
}

func TestMergeDropsDuplicates(t *testing.T) {
	base := CatalogFor(8)
	merged := Merge(base, []CatalogEntry{
		base[0],
		{Width: 8, Poly: 0x49},
	})
	if len(merged) != len(base)+1 {
		t.Fatalf("merged %d entries, want %d", len(merged), len(base)+1)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	content := "entries:\n" +
		"  - width: 16\n" +
		"    poly: 0x6F63\n" +
		"    reflectIn: true\n" +
		"    reflectOut: true\n" +
		"  - width: 8\n" +
		"    poly: 0x49\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	entries, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Poly != 0x6F63 || !entries[0].ReflectIn {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}

	catalog, err := CatalogWithOverlay(path)
	if err != nil {
		t.Fatalf("CatalogWithOverlay: %v", err)
	}
	if got, want := len(catalog(16)), len(CatalogFor(16))+1; got != want {
		t.Fatalf("overlay catalog has %d 16-bit entries, want %d", got, want)
	}
}

func TestLoadOverlayRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad-width", "entries:\n  - width: 24\n    poly: 0x1021\n"},
		{"zero-poly", "entries:\n  - width: 16\n    poly: 0\n"},
		{"oversized-poly", "entries:\n  - width: 8\n    poly: 0x1FF\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "extra.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("write overlay: %v", err)
			}
			if _, err := LoadOverlay(path); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
