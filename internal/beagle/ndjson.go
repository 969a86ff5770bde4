package beagle

import (
	"bufio"
	"encoding/json"
	"os"
	"time"
)

type outcomeRecord struct {
	Ts        time.Time `json:"ts"`
	SessionID string    `json:"sessionId"`
	Width     int       `json:"width"`
	GroupOutcome
}

// WriteOutcomesNDJSON writes one JSON line per group outcome, stamped with
// the report's session identifier.
func WriteOutcomesNDJSON(report *SearchReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	for _, g := range report.Groups {
		rec := outcomeRecord{
			Ts:           report.StartedAt,
			SessionID:    report.SessionID,
			Width:        report.Width,
			GroupOutcome: g,
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		w.Write(b)
		w.WriteString("\n")
	}
	return nil
}
