package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/colinoflynn/crcbeagle/internal/beagle"
)

func sampleReport() *beagle.SearchReport {
	return &beagle.SearchReport{
		SessionID: "8e2f4ab0-0000-4000-8000-2b9d1c7f0001",
		StartedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Width:     16,
		Messages:  3,
		Groups: []beagle.GroupOutcome{
			{
				MessageLen: 20,
				Members:    3,
				Pairs:      2,
				Status:     beagle.StatusSingleSolution,
				Shapes:     []beagle.CandidateShape{{Poly: 0x1021, Order: beagle.OrderLittle}},
				Solutions: []beagle.ParameterSet{
					{Shape: beagle.CandidateShape{Poly: 0x1021, Order: beagle.OrderLittle}, Width: 16, XorOutput: 0xCACA},
				},
			},
			{MessageLen: 5, Members: 1, Status: beagle.StatusInsufficientData, Notes: []string{"single message of this size"}},
		},
	}
}

func TestSaveLoadReportJSON(t *testing.T) {
	rep := sampleReport()
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveReportJSON(rep, path); err != nil {
		t.Fatalf("SaveReportJSON: %v", err)
	}
	loaded, err := LoadReportJSON(path)
	if err != nil {
		t.Fatalf("LoadReportJSON: %v", err)
	}
	if loaded.SessionID != rep.SessionID || loaded.Width != rep.Width {
		t.Fatalf("round trip changed header fields: %+v", loaded)
	}
	if len(loaded.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(loaded.Groups))
	}
	if loaded.Groups[0].Solutions[0].XorOutput != 0xCACA {
		t.Fatalf("solution lost in round trip: %+v", loaded.Groups[0])
	}
}

func TestSaveReportPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := SaveReportPDF(sampleReport(), path); err != nil {
		t.Fatalf("SaveReportPDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat pdf: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty pdf written")
	}
}

func TestParameterQR(t *testing.T) {
	png, err := ParameterQR("width=16 poly=0x1021 refin=false refout=false order=le init=0x0 xorout=0xCACA", 128)
	if err != nil {
		t.Fatalf("ParameterQR: %v", err)
	}
	if len(png) == 0 {
		t.Fatalf("empty png")
	}
	if _, err := ParameterQR("   ", 128); err == nil {
		t.Fatalf("expected error for empty line")
	}
}
