package crcengine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type overlayFile struct {
	Entries []CatalogEntry `yaml:"entries"`
}

// LoadOverlay reads extra catalog entries from a YAML file. Entries must
// name a supported width and a nonzero polynomial that fits the width.
func LoadOverlay(path string) ([]CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file overlayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	for i, e := range file.Entries {
		switch e.Width {
		case 8, 16, 32:
		default:
			return nil, fmt.Errorf("entries[%d]: unsupported width %d", i, e.Width)
		}
		if e.Poly == 0 {
			return nil, fmt.Errorf("entries[%d]: polynomial must be nonzero", i)
		}
		if e.Poly > Mask(e.Width) {
			return nil, fmt.Errorf("entries[%d]: polynomial 0x%X exceeds %d bits", i, e.Poly, e.Width)
		}
	}
	return file.Entries, nil
}

// Merge appends extra entries to base, dropping structural duplicates.
func Merge(base, extra []CatalogEntry) []CatalogEntry {
	seen := make(map[CatalogEntry]struct{}, len(base)+len(extra))
	out := make([]CatalogEntry, 0, len(base)+len(extra))
	for _, e := range base {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	for _, e := range extra {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// CatalogWithOverlay returns a width-indexed catalog function that serves
// the built-in entries merged with the overlay file at path. An empty path
// yields the built-in catalog unchanged.
func CatalogWithOverlay(path string) (func(width int) []CatalogEntry, error) {
	if path == "" {
		return CatalogFor, nil
	}
	extra, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	byWidth := make(map[int][]CatalogEntry)
	for _, e := range extra {
		byWidth[e.Width] = append(byWidth[e.Width], e)
	}
	return func(width int) []CatalogEntry {
		return Merge(CatalogFor(width), byWidth[width])
	}, nil
}
