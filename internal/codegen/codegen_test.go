package codegen

import (
	"strings"
	"testing"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
)

func TestUsageExample16LE(t *testing.T) {
	ps := beagle.ParameterSet{
		Shape:     beagle.CandidateShape{Poly: 0x1021, Order: beagle.OrderLittle},
		Width:     16,
		XorOutput: 0xCACA,
	}
	src, err := UsageExample(ps, []byte{0xA5, 0x10})
	if err != nil {
		t.Fatalf("UsageExample: %v", err)
	}
	for _, want := range []string{
		"func messageChecksum(message []byte) []byte",
		"poly   = 0x1021",
		"xorOut = 0xCACA",
		"binary.LittleEndian.PutUint16",
		"[]byte{0xA5, 0x10}",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "reverseByte") || strings.Contains(src, "reverseBits") {
		t.Errorf("unreflected parameters should not emit reflection helpers:\n%s", src)
	}
}

func TestUsageExample8Reflected(t *testing.T) {
	ps := beagle.ParameterSet{
		Shape:     beagle.CandidateShape{Poly: 0x39, ReflectIn: true, ReflectOut: true, Order: beagle.OrderNone},
		Width:     8,
		XorOutput: 0x5A,
	}
	src, err := UsageExample(ps, nil)
	if err != nil {
		t.Fatalf("UsageExample: %v", err)
	}
	for _, want := range []string{
		"reverseByte",
		"reverseBits",
		"return []byte{byte(reg)}",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "Example:") {
		t.Errorf("no example message supplied, but example comment rendered:\n%s", src)
	}
}

func TestUsageExampleUnsupportedWidth(t *testing.T) {
	ps := beagle.ParameterSet{Width: 24}
	if _, err := UsageExample(ps, nil); err == nil {
		t.Fatalf("expected error for unsupported width")
	}
}
