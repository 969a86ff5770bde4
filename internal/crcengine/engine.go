// Package crcengine computes checksums from explicit parameter records and
// carries the catalog of known polynomial/reflection combinations. Every
// computation takes a Params value; nothing in this package holds state
// between calls.
package crcengine

// Params describes one concrete checksum construction. It is passed by
// value into Checksum so repeated invocations can never interfere.
type Params struct {
	Width      int
	Poly       uint64
	ReflectIn  bool
	ReflectOut bool
	Init       uint64
	XorOut     uint64
}

// Mask returns the value mask for a register of the given bit width.
func Mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func reflectBits(v uint64, n int) uint64 {
	var r uint64
	for i := 0; i < n; i++ {
		if v>>uint(i)&1 != 0 {
			r |= 1 << uint(n-1-i)
		}
	}
	return r
}

// Checksum runs the canonical bit-serial CRC over data. ReflectIn reverses
// each input byte before it enters the register; ReflectOut reverses the
// final register before XorOut is applied. Width must be one of 8, 16 or 32.
//
// For Init == 0 and XorOut == 0 the result is linear over XOR:
// Checksum(p, a) ^ Checksum(p, b) == Checksum(p, a XOR b) for equal-length
// a and b. The differential search depends on this identity.
func Checksum(p Params, data []byte) uint64 {
	mask := Mask(p.Width)
	top := uint64(1) << uint(p.Width-1)
	reg := p.Init & mask
	for _, b := range data {
		v := uint64(b)
		if p.ReflectIn {
			v = reflectBits(v, 8)
		}
		reg ^= v << uint(p.Width-8)
		for i := 0; i < 8; i++ {
			if reg&top != 0 {
				reg = (reg<<1 ^ p.Poly) & mask
			} else {
				reg = reg << 1 & mask
			}
		}
	}
	if p.ReflectOut {
		reg = reflectBits(reg, p.Width)
	}
	return (reg ^ p.XorOut) & mask
}
