package report

import (
	"encoding/json"
	"os"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
)

func SaveReportJSON(rep *beagle.SearchReport, out string) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(out, b, 0644)
}

func LoadReportJSON(path string) (*beagle.SearchReport, error) {
	var rep beagle.SearchReport
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
