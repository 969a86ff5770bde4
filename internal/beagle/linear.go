package beagle

// DetectLinearCode tests whether a plain additive or XOR-fold checksum
// explains every example. Only meaningful for 8-bit check values; callers
// gate on width. The additive hypothesis wins ties, matching the order the
// two hypotheses are tried.
func DetectLinearCode(messages, checks [][]byte) *LinearFinding {
	if finding := linearHypothesis(messages, checks, LinearAdditive); finding != nil {
		return finding
	}
	return linearHypothesis(messages, checks, LinearXor)
}

func linearHypothesis(messages, checks [][]byte, kind LinearKind) *LinearFinding {
	if len(messages) == 0 {
		return nil
	}
	var mask uint8
	for i, m := range messages {
		var test uint8
		for _, d := range m {
			if kind == LinearAdditive {
				test += d
			} else {
				test ^= d
			}
		}
		delta := test ^ checks[i][0]
		if i == 0 {
			mask = delta
			continue
		}
		if delta != mask {
			return nil
		}
	}
	return &LinearFinding{Status: StatusLinearCode, Kind: kind, Mask: mask}
}
