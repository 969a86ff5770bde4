package beagle

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteOutcomesNDJSON(t *testing.T) {
	rep := &SearchReport{
		SessionID: "test-session",
		StartedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Width:     16,
		Messages:  3,
		Groups: []GroupOutcome{
			{MessageLen: 20, Members: 3, Pairs: 2, Status: StatusSingleSolution},
			{MessageLen: 5, Members: 1, Status: StatusInsufficientData},
		},
	}
	path := filepath.Join(t.TempDir(), "outcomes.jsonl")
	if err := WriteOutcomesNDJSON(rep, path); err != nil {
		t.Fatalf("WriteOutcomesNDJSON: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var lines int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d: %v", lines+1, err)
		}
		if rec["sessionId"] != "test-session" {
			t.Fatalf("line %d missing session id: %v", lines+1, rec)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("got %d lines, want 2", lines)
	}
}
