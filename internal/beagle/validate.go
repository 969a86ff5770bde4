package beagle

import (
	"github.com/colinoflynn/crcbeagle/internal/common"
)

// Validate checks dataset consistency, determines the check-value width and
// groups message indices by message length. Groups come back in first-seen
// order so repeated runs over the same capture report identically.
func Validate(messages, checks [][]byte) (int, []LengthGroup, error) {
	if len(messages) != len(checks) {
		return 0, nil, configErrorf("message and check-value counts differ: %d, %d", len(messages), len(checks))
	}

	common.Logf("got %d input message-check pairs", len(messages))

	checkLen := -1
	for i, c := range checks {
		if len(c) == 0 {
			return 0, nil, configErrorf("check value %d must be a byte sequence, not a scalar", i)
		}
		if checkLen == -1 {
			checkLen = len(c)
			continue
		}
		if len(c) != checkLen {
			return 0, nil, configErrorf("check values must share one length, expected %d, found %d at index %d", checkLen, len(c), i)
		}
	}

	switch checkLen {
	case 1, 2, 4:
	default:
		return 0, nil, configErrorf("detected %d-bit check value, not supported", checkLen*8)
	}
	width := checkLen * 8

	var groups []LengthGroup
	byLen := make(map[int]int)
	for i, m := range messages {
		l := len(m)
		gi, ok := byLen[l]
		if !ok {
			byLen[l] = len(groups)
			groups = append(groups, LengthGroup{MessageLen: l, Indexes: []int{i}})
			continue
		}
		groups[gi].Indexes = append(groups[gi].Indexes, i)
	}

	common.Logf("input parameters: %d-bit check value, %d total messages", width, len(messages))
	for _, g := range groups {
		common.Logf("  %2d messages with %d byte payload", len(g.Indexes), g.MessageLen)
	}
	if len(groups) == 1 {
		common.Logf("note: recovered parameters may be specific to this message size only; pass different length messages if possible")
	}

	return width, groups, nil
}
