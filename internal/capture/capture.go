// Package capture loads message/check-value datasets from the formats an
// analyst typically has at hand: a JSON object with parallel integer
// arrays, or plain text with one hex-encoded message and check value per
// line.
package capture

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dataset is a decoded capture ready for the search.
type Dataset struct {
	Messages [][]byte
	Checks   [][]byte
}

type jsonDataset struct {
	Messages [][]int `json:"messages"`
	Checks   [][]int `json:"checks"`
}

// FromInts converts parallel integer arrays into a Dataset, rejecting
// values outside 0-255.
func FromInts(messages, checks [][]int) (Dataset, error) {
	var ds Dataset
	var err error
	if ds.Messages, err = toBytes(messages, "messages"); err != nil {
		return Dataset{}, err
	}
	if ds.Checks, err = toBytes(checks, "checks"); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func toBytes(rows [][]int, field string) ([][]byte, error) {
	out := make([][]byte, len(rows))
	for i, row := range rows {
		b := make([]byte, len(row))
		for j, v := range row {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%s[%d][%d]: value %d out of byte range", field, i, j, v)
			}
			b[j] = byte(v)
		}
		out[i] = b
	}
	return out, nil
}

// ParseJSON decodes a {"messages": [[...]], "checks": [[...]]} document.
func ParseJSON(data []byte) (Dataset, error) {
	var doc jsonDataset
	if err := json.Unmarshal(data, &doc); err != nil {
		return Dataset{}, err
	}
	return FromInts(doc.Messages, doc.Checks)
}

// ParseHexLines decodes text with one example per line: the hex-encoded
// message, whitespace, then the hex-encoded check value. Blank lines and
// lines starting with # are skipped.
func ParseHexLines(data []byte) (Dataset, error) {
	var ds Dataset
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return Dataset{}, fmt.Errorf("line %d: want '<message-hex> <check-hex>', got %d fields", n+1, len(fields))
		}
		msg, err := hex.DecodeString(fields[0])
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d: message: %v", n+1, err)
		}
		chk, err := hex.DecodeString(fields[1])
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d: check value: %v", n+1, err)
		}
		ds.Messages = append(ds.Messages, msg)
		ds.Checks = append(ds.Checks, chk)
	}
	return ds, nil
}

// Load reads a capture file, choosing the decoder by file extension:
// .json for the JSON layout, anything else for hex lines.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return ParseJSON(data)
	}
	return ParseHexLines(data)
}
