package beagle

import (
	"fmt"

	"github.com/colinoflynn/crcbeagle/internal/crcengine"
)

// resolveShape recovers the xor-output constant for one surviving shape by
// comparing the zero-seeded checksum of every group member against the
// observed check value. All deltas equal means that constant is the mask;
// differing deltas mean the shape cannot explain the group.
func resolveShape(shape CandidateShape, width int, messages, checks [][]byte, indexes []int) (ParameterSet, bool, string) {
	p := crcengine.Params{
		Width:      width,
		Poly:       shape.Poly,
		ReflectIn:  shape.ReflectIn,
		ReflectOut: shape.ReflectOut,
	}

	var xorOut uint64
	for i, idx := range indexes {
		raw := crcengine.Checksum(p, messages[idx])
		observed := decodeOrder(checks[idx], shape.Order)
		delta := raw ^ observed
		if i == 0 {
			xorOut = delta
			continue
		}
		if delta != xorOut {
			note := fmt.Sprintf("shape %s: xor-output inconsistent, 0x%X vs 0x%X", shape, xorOut, delta)
			return ParameterSet{}, false, note
		}
	}

	return ParameterSet{Shape: shape, Width: width, Init: 0, XorOutput: xorOut}, true, ""
}
