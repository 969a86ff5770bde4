package report

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// ParameterQR creates a QR code PNG encoding the canonical parameter line
// of a resolved solution, so the recovered settings can be scanned straight
// off a printed report.
func ParameterQR(line string, size int) ([]byte, error) {
	normalized := strings.TrimSpace(line)
	if normalized == "" {
		return nil, fmt.Errorf("parameter line is empty")
	}
	if size <= 0 {
		size = 128
	}
	png, err := qrcode.Encode(normalized, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
