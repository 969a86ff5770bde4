// Package codegen renders a standalone Go snippet demonstrating how to
// compute check values with a recovered parameter set. The generated code
// has no dependency on this module so it can be pasted straight into a
// protocol client.
package codegen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"text/template"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
	"github.com/colinoflynn/crcbeagle/internal/crcengine"
)

const usageTemplate = `// messageChecksum implements the recovered check function:
//   {{.Summary}}
func messageChecksum(message []byte) []byte {
	const (
		poly   = {{printf "0x%X" .Poly}}
		xorOut = {{printf "0x%X" .XorOut}}
	)
	var reg uint{{.Width}}
	for _, b := range message {
{{- if .ReflectIn}}
		b = reverseByte(b)
{{- end}}
		reg ^= uint{{.Width}}(b){{if .Shift}} << {{.Shift}}{{end}}
		for i := 0; i < 8; i++ {
			if reg&{{printf "0x%X" .TopBit}} != 0 {
				reg = reg<<1 ^ poly
			} else {
				reg <<= 1
			}
		}
	}
{{- if .ReflectOut}}
	reg = reverseBits(reg)
{{- end}}
	reg ^= xorOut
{{- if eq .CheckLen 1}}
	return []byte{byte(reg)}
{{- else if eq .Order "le"}}
	out := make([]byte, {{.CheckLen}})
	binary.LittleEndian.PutUint{{.Width}}(out, reg)
	return out
{{- else}}
	out := make([]byte, {{.CheckLen}})
	binary.BigEndian.PutUint{{.Width}}(out, reg)
	return out
{{- end}}
}
{{- if .ReflectIn}}

func reverseByte(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r = r<<1 | b&1
		b >>= 1
	}
	return r
}
{{- end}}
{{- if .ReflectOut}}

func reverseBits(v uint{{.Width}}) uint{{.Width}} {
	var r uint{{.Width}}
	for i := 0; i < {{.Width}}; i++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}
{{- end}}
{{- if .Example}}

// Example:
//   messageChecksum({{.Example}}) => {{.ExampleOut}}
{{- end}}
`

var tmpl = template.Must(template.New("usage").Parse(usageTemplate))

type templateData struct {
	Summary    string
	Width      int
	Poly       uint64
	XorOut     uint64
	TopBit     uint64
	Shift      int
	ReflectIn  bool
	ReflectOut bool
	Order      string
	CheckLen   int
	Example    string
	ExampleOut string
}

// UsageExample renders Go source text for the given parameter set. The
// optional message, normally one of the analyzed captures, is echoed in a
// trailing comment together with its expected check bytes.
func UsageExample(ps beagle.ParameterSet, message []byte) (string, error) {
	switch ps.Width {
	case 8, 16, 32:
	default:
		return "", fmt.Errorf("unsupported width %d", ps.Width)
	}
	data := templateData{
		Summary:    ps.String(),
		Width:      ps.Width,
		Poly:       ps.Shape.Poly,
		XorOut:     ps.XorOutput,
		TopBit:     uint64(1) << uint(ps.Width-1),
		Shift:      ps.Width - 8,
		ReflectIn:  ps.Shape.ReflectIn,
		ReflectOut: ps.Shape.ReflectOut,
		Order:      string(ps.Shape.Order),
		CheckLen:   ps.Width / 8,
	}
	if len(message) > 0 {
		data.Example = byteSliceLiteral(message)
		data.ExampleOut = byteSliceLiteral(checkBytes(ps, message))
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func checkBytes(ps beagle.ParameterSet, message []byte) []byte {
	v := crcengine.Checksum(crcengine.Params{
		Width:      ps.Width,
		Poly:       ps.Shape.Poly,
		ReflectIn:  ps.Shape.ReflectIn,
		ReflectOut: ps.Shape.ReflectOut,
		Init:       ps.Init,
		XorOut:     ps.XorOutput,
	}, message)
	switch {
	case ps.Width == 8:
		return []byte{byte(v)}
	case ps.Width == 16 && ps.Shape.Order == beagle.OrderBig:
		out := make([]byte, 2)
		binary.BigEndian.PutUint16(out, uint16(v))
		return out
	case ps.Width == 16:
		out := make([]byte, 2)
		binary.LittleEndian.PutUint16(out, uint16(v))
		return out
	case ps.Width == 32 && ps.Shape.Order == beagle.OrderBig:
		out := make([]byte, 4)
		binary.BigEndian.PutUint32(out, uint32(v))
		return out
	default:
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, uint32(v))
		return out
	}
}

func byteSliceLiteral(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("0x%02X", v)
	}
	return "[]byte{" + strings.Join(parts, ", ") + "}"
}
