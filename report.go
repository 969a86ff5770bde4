package crcbeagle

import (
	"github.com/colinoflynn/crcbeagle/internal/beagle"
	"github.com/colinoflynn/crcbeagle/internal/report"
)

// SaveReportJSON writes a search report as indented JSON.
func SaveReportJSON(rep *SearchReport, out string) error {
	return report.SaveReportJSON(rep, out)
}

// LoadReportJSON reads a search report written by SaveReportJSON.
func LoadReportJSON(path string) (*SearchReport, error) {
	return report.LoadReportJSON(path)
}

// SaveReportPDF renders a search report into a PDF document.
func SaveReportPDF(rep *SearchReport, out string) error {
	return report.SaveReportPDF(rep, out)
}

// WriteOutcomesNDJSON writes one JSON line per group outcome.
func WriteOutcomesNDJSON(rep *SearchReport, path string) error {
	return beagle.WriteOutcomesNDJSON(rep, path)
}
