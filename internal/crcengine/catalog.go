package crcengine

// CatalogEntry is one known polynomial/reflection shape for a given width.
// Entries are reference data; the search never mutates them.
type CatalogEntry struct {
	Width      int    `yaml:"width" json:"width"`
	Poly       uint64 `yaml:"poly" json:"poly"`
	ReflectIn  bool   `yaml:"reflectIn" json:"reflectIn"`
	ReflectOut bool   `yaml:"reflectOut" json:"reflectOut"`
}

// Widths lists the check-value widths the catalog covers.
var Widths = []int{8, 16, 32}

var builtin = map[int][]CatalogEntry{
	8: {
		{Width: 8, Poly: 0x07},
		{Width: 8, Poly: 0x07, ReflectIn: true, ReflectOut: true},
		{Width: 8, Poly: 0x9B},
		{Width: 8, Poly: 0x9B, ReflectIn: true, ReflectOut: true},
		{Width: 8, Poly: 0x39, ReflectIn: true, ReflectOut: true},
		{Width: 8, Poly: 0xD5},
		{Width: 8, Poly: 0x1D},
		{Width: 8, Poly: 0x1D, ReflectIn: true, ReflectOut: true},
		{Width: 8, Poly: 0x2F},
		{Width: 8, Poly: 0x31, ReflectIn: true, ReflectOut: true},
		{Width: 8, Poly: 0xA7, ReflectIn: true, ReflectOut: true},
	},
	16: {
		{Width: 16, Poly: 0x1021},
		{Width: 16, Poly: 0x1021, ReflectIn: true, ReflectOut: true},
		{Width: 16, Poly: 0x8005},
		{Width: 16, Poly: 0x8005, ReflectIn: true, ReflectOut: true},
		{Width: 16, Poly: 0xC867},
		{Width: 16, Poly: 0x0589},
		{Width: 16, Poly: 0x3D65},
		{Width: 16, Poly: 0x3D65, ReflectIn: true, ReflectOut: true},
		{Width: 16, Poly: 0x8BB7},
		{Width: 16, Poly: 0xA097},
		{Width: 16, Poly: 0x1DCF},
		{Width: 16, Poly: 0x5935},
		{Width: 16, Poly: 0x755B},
		{Width: 16, Poly: 0x080B, ReflectIn: true, ReflectOut: true},
	},
	32: {
		{Width: 32, Poly: 0x04C11DB7, ReflectIn: true, ReflectOut: true},
		{Width: 32, Poly: 0x04C11DB7},
		{Width: 32, Poly: 0x1EDC6F41, ReflectIn: true, ReflectOut: true},
		{Width: 32, Poly: 0xA833982B, ReflectIn: true, ReflectOut: true},
		{Width: 32, Poly: 0x814141AB},
		{Width: 32, Poly: 0x000000AF},
		{Width: 32, Poly: 0x8001801B, ReflectIn: true, ReflectOut: true},
	},
}

// CatalogFor returns the known shapes for the given width. The slice is a
// copy; callers may not reach the backing reference data.
func CatalogFor(width int) []CatalogEntry {
	src := builtin[width]
	if len(src) == 0 {
		return nil
	}
	out := make([]CatalogEntry, len(src))
	copy(out, src)
	return out
}
