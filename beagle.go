// Package crcbeagle recovers the unknown parameters of a CRC or checksum
// function from captured (message, check-value) pairs, using the
// differential technique: XOR-ing equal-length messages and their check
// values cancels the initial value and output mask, so candidate
// polynomial/reflection shapes can be matched without knowing either.
package crcbeagle

import (
	"github.com/colinoflynn/crcbeagle/internal/beagle"
	"github.com/colinoflynn/crcbeagle/internal/codegen"
	"github.com/colinoflynn/crcbeagle/internal/crcengine"
)

type (
	ByteOrder      = beagle.ByteOrder
	CandidateShape = beagle.CandidateShape
	ParameterSet   = beagle.ParameterSet
	LengthGroup    = beagle.LengthGroup
	Status         = beagle.Status
	LinearFinding  = beagle.LinearFinding
	GroupOutcome   = beagle.GroupOutcome
	SearchReport   = beagle.SearchReport
	ConfigError    = beagle.ConfigError
	Searcher       = beagle.Searcher
	CatalogEntry   = crcengine.CatalogEntry
)

const (
	OrderLittle = beagle.OrderLittle
	OrderBig    = beagle.OrderBig
	OrderNone   = beagle.OrderNone

	StatusLinearCode       = beagle.StatusLinearCode
	StatusSingleSolution   = beagle.StatusSingleSolution
	StatusNoSolution       = beagle.StatusNoSolution
	StatusAmbiguous        = beagle.StatusAmbiguous
	StatusInsufficientData = beagle.StatusInsufficientData
)

// NewSearcher returns a Searcher with the built-in catalog.
func NewSearcher() *Searcher {
	return beagle.NewSearcher()
}

// Search runs the full parameter recovery with default settings.
func Search(messages, checks [][]byte) (*SearchReport, error) {
	return beagle.NewSearcher().Search(messages, checks)
}

// CatalogFor returns the built-in catalog entries for a bit width.
func CatalogFor(width int) []CatalogEntry {
	return crcengine.CatalogFor(width)
}

// UsageExample renders Go source text demonstrating a resolved parameter
// set; message, normally one of the analyzed captures, is optional.
func UsageExample(ps ParameterSet, message []byte) (string, error) {
	return codegen.UsageExample(ps, message)
}
