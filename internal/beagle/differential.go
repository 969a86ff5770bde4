package beagle

import (
	"bytes"
	"encoding/binary"
	"sort"
	"sync"

	"github.com/colinoflynn/crcbeagle/internal/common"
	"github.com/colinoflynn/crcbeagle/internal/crcengine"
)

type matcher struct {
	width       int
	catalog     []crcengine.CatalogEntry
	concurrency int
	metrics     *common.Metrics
}

// matchGroup builds the groupSize-1 successive-pair differences for one
// length group and intersects the per-pair candidate sets. The returned
// shapes are sorted so results are stable regardless of worker scheduling.
func (m *matcher) matchGroup(messages, checks [][]byte, g LengthGroup) []CandidateShape {
	var intersection map[CandidateShape]struct{}
	for i := 0; i+1 < len(g.Indexes); i++ {
		idx1, idx2 := g.Indexes[i], g.Indexes[i+1]
		common.Logf("using diff between message %d and %d", idx1, idx2)
		pairSet := m.matchPair(messages[idx1], messages[idx2], checks[idx1], checks[idx2])
		if m.metrics != nil {
			m.metrics.IncPair()
		}
		if len(pairSet) == 0 {
			common.Logf("no parameters for difference of messages %d and %d", idx1, idx2)
		}
		if intersection == nil {
			intersection = pairSet
			continue
		}
		for shape := range intersection {
			if _, ok := pairSet[shape]; !ok {
				delete(intersection, shape)
			}
		}
	}

	shapes := make([]CandidateShape, 0, len(intersection))
	for shape := range intersection {
		shapes = append(shapes, shape)
	}
	sort.Slice(shapes, func(i, j int) bool {
		a, b := shapes[i], shapes[j]
		if a.Poly != b.Poly {
			return a.Poly < b.Poly
		}
		if a.ReflectIn != b.ReflectIn {
			return !a.ReflectIn
		}
		if a.ReflectOut != b.ReflectOut {
			return !a.ReflectOut
		}
		return a.Order < b.Order
	})
	return shapes
}

// matchPair XORs one message pair and its check values and collects every
// catalog shape whose zero-seeded checksum of the difference reproduces the
// check difference.
func (m *matcher) matchPair(msg1, msg2, chk1, chk2 []byte) map[CandidateShape]struct{} {
	diff := make([]byte, len(msg1))
	for j := range msg1 {
		diff[j] = msg1[j] ^ msg2[j]
	}
	diffCheck := make([]byte, len(chk1))
	for j := range chk1 {
		diffCheck[j] = chk1[j] ^ chk2[j]
	}

	set := make(map[CandidateShape]struct{})
	if m.concurrency > 1 && len(m.catalog) > 1 {
		var mu sync.Mutex
		var wg sync.WaitGroup
		work := make(chan crcengine.CatalogEntry)
		for w := 0; w < m.concurrency; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for entry := range work {
					shapes := m.matchEntry(entry, diff, diffCheck)
					if len(shapes) == 0 {
						continue
					}
					mu.Lock()
					for _, s := range shapes {
						set[s] = struct{}{}
					}
					mu.Unlock()
				}
			}()
		}
		for _, entry := range m.catalog {
			work <- entry
		}
		close(work)
		wg.Wait()
	} else {
		for _, entry := range m.catalog {
			for _, s := range m.matchEntry(entry, diff, diffCheck) {
				set[s] = struct{}{}
			}
		}
	}
	if m.metrics != nil {
		m.metrics.AddComparisons(int64(len(m.catalog)))
	}
	return set
}

// matchEntry computes the zero-seeded checksum of the message difference
// for one catalog entry and compares it against the check difference. A
// 16- or 32-bit result is tried in both byte orders; each match yields a
// distinct shape.
func (m *matcher) matchEntry(entry crcengine.CatalogEntry, diff, diffCheck []byte) []CandidateShape {
	p := crcengine.Params{
		Width:      m.width,
		Poly:       entry.Poly,
		ReflectIn:  entry.ReflectIn,
		ReflectOut: entry.ReflectOut,
	}
	res := crcengine.Checksum(p, diff)

	base := CandidateShape{Poly: entry.Poly, ReflectIn: entry.ReflectIn, ReflectOut: entry.ReflectOut}
	if m.width == 8 {
		if uint64(diffCheck[0]) == res {
			base.Order = OrderNone
			return []CandidateShape{base}
		}
		return nil
	}

	var shapes []CandidateShape
	for _, order := range []ByteOrder{OrderLittle, OrderBig} {
		if bytes.Equal(diffCheck, encodeOrder(res, m.width, order)) {
			s := base
			s.Order = order
			shapes = append(shapes, s)
		}
	}
	return shapes
}

func encodeOrder(v uint64, width int, order ByteOrder) []byte {
	buf := make([]byte, width/8)
	switch {
	case width == 16 && order == OrderLittle:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case width == 16 && order == OrderBig:
		binary.BigEndian.PutUint16(buf, uint16(v))
	case width == 32 && order == OrderLittle:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case width == 32 && order == OrderBig:
		binary.BigEndian.PutUint32(buf, uint32(v))
	}
	return buf
}

func decodeOrder(b []byte, order ByteOrder) uint64 {
	switch {
	case len(b) == 1:
		return uint64(b[0])
	case len(b) == 2 && order == OrderLittle:
		return uint64(binary.LittleEndian.Uint16(b))
	case len(b) == 2 && order == OrderBig:
		return uint64(binary.BigEndian.Uint16(b))
	case len(b) == 4 && order == OrderLittle:
		return uint64(binary.LittleEndian.Uint32(b))
	case len(b) == 4 && order == OrderBig:
		return uint64(binary.BigEndian.Uint32(b))
	}
	return 0
}
