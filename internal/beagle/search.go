package beagle

import (
	"time"

	"github.com/google/uuid"

	"github.com/colinoflynn/crcbeagle/internal/common"
	"github.com/colinoflynn/crcbeagle/internal/crcengine"
)

// Searcher runs the full parameter recovery over a dataset. The zero value
// is not usable; construct with NewSearcher and adjust fields before the
// first Search call.
type Searcher struct {
	// Catalog maps a bit width to the known shapes to try. Defaults to the
	// built-in catalog.
	Catalog func(width int) []crcengine.CatalogEntry
	// Concurrency bounds the catalog-matching workers per difference.
	// Values below 2 keep matching fully synchronous.
	Concurrency int
	// Metrics, when set, receives comparison/pair/group counters.
	Metrics *common.Metrics
}

func NewSearcher() *Searcher {
	return &Searcher{Catalog: crcengine.CatalogFor, Concurrency: 1}
}

// Search validates the dataset and runs the linear pre-check and the
// differential search. A returned error is always a *ConfigError; every
// downstream outcome lands in the report as a per-group status.
func (s *Searcher) Search(messages, checks [][]byte) (*SearchReport, error) {
	width, groups, err := Validate(messages, checks)
	if err != nil {
		return nil, err
	}

	report := &SearchReport{
		SessionID: uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Width:     width,
		Messages:  len(messages),
	}

	if width == 8 {
		common.Logf("checking for linear code")
		if finding := DetectLinearCode(messages, checks); finding != nil {
			common.Logf("possible linear code and not CRC: %s mask 0x%02X, valid on all %d inputs", finding.Kind, finding.Mask, len(messages))
			report.Linear = finding
		}
	} else {
		common.Logf("16-bit or 32-bit check value, skipping linear code check")
	}

	catalog := s.Catalog
	if catalog == nil {
		catalog = crcengine.CatalogFor
	}
	m := &matcher{
		width:       width,
		catalog:     catalog(width),
		concurrency: s.Concurrency,
		metrics:     s.Metrics,
	}

	for _, g := range groups {
		report.Groups = append(report.Groups, s.searchGroup(m, messages, checks, g))
	}
	return report, nil
}

func (s *Searcher) searchGroup(m *matcher, messages, checks [][]byte, g LengthGroup) GroupOutcome {
	common.Logf("working on messages of %d length", g.MessageLen)
	if s.Metrics != nil {
		s.Metrics.IncGroup()
	}

	outcome := GroupOutcome{
		MessageLen: g.MessageLen,
		Members:    len(g.Indexes),
	}
	if len(g.Indexes) < 2 {
		outcome.Status = StatusInsufficientData
		outcome.Notes = append(outcome.Notes, "single message of this size, need at least two to build a difference")
		return outcome
	}
	outcome.Pairs = len(g.Indexes) - 1

	shapes := m.matchGroup(messages, checks, g)
	outcome.Shapes = shapes
	if len(shapes) == 0 {
		outcome.Status = StatusNoSolution
		outcome.Notes = append(outcome.Notes, "no common solution across differences; possibly not a real CRC, an implementation error, or a non-standard polynomial")
		return outcome
	}

	for _, shape := range shapes {
		ps, ok, note := resolveShape(shape, m.width, messages, checks, g.Indexes)
		if !ok {
			outcome.Notes = append(outcome.Notes, note)
			continue
		}
		common.Logf("found xor-output value for len=%d: 0x%X", g.MessageLen, ps.XorOutput)
		outcome.Solutions = append(outcome.Solutions, ps)
	}

	switch {
	case len(outcome.Solutions) == 0:
		outcome.Status = StatusNoSolution
	case len(shapes) == 1:
		outcome.Status = StatusSingleSolution
	default:
		outcome.Status = StatusAmbiguous
	}
	return outcome
}
