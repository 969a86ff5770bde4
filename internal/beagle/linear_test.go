package beagle

import "testing"

func TestDetectLinearCodeAdditive(t *testing.T) {
	// Both messages sum to a value whose XOR with the observed check byte
	// is 0xFF: an additive checksum with an inverted output.
	messages := [][]byte{
		{0, 240, 84, 1, 132, 153},
		{0, 240, 46, 1, 10, 64},
	}
	checks := [][]byte{{157}, {150}}
	finding := DetectLinearCode(messages, checks)
	if finding == nil {
		t.Fatalf("expected a linear finding")
	}
	if finding.Status != StatusLinearCode {
		t.Fatalf("status = %s, want %s", finding.Status, StatusLinearCode)
	}
	if finding.Kind != LinearAdditive {
		t.Fatalf("kind = %s, want %s", finding.Kind, LinearAdditive)
	}
	if finding.Mask != 0xFF {
		t.Fatalf("mask = 0x%02X, want 0xFF", finding.Mask)
	}
}

func TestDetectLinearCodeXorFold(t *testing.T) {
	messages := [][]byte{
		{0x11, 0x22, 0x33},
		{0x44, 0x55, 0x66},
		{0x0F, 0xF0, 0x3C},
	}
	checks := make([][]byte, len(messages))
	for i, m := range messages {
		var fold byte
		for _, d := range m {
			fold ^= d
		}
		checks[i] = []byte{fold ^ 0x5A}
	}
	finding := DetectLinearCode(messages, checks)
	if finding == nil {
		t.Fatalf("expected a linear finding")
	}
	if finding.Kind != LinearXor || finding.Mask != 0x5A {
		t.Fatalf("unexpected finding: %+v", finding)
	}
}

func TestDetectLinearCodeNoMatch(t *testing.T) {
	messages := [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0x05, 0x06},
	}
	checks := [][]byte{{0x10}, {0x99}}
	if finding := DetectLinearCode(messages, checks); finding != nil {
		t.Fatalf("unexpected finding: %+v", finding)
	}
}
