// Package beagle recovers unknown CRC/checksum parameters from captured
// (message, check-value) pairs using the differential technique: XOR-ing
// equal-length messages and their check values cancels the initial value
// and output mask, leaving a residue that only depends on the polynomial
// and reflection settings.
package beagle

import (
	"fmt"
	"time"
)

// ByteOrder tells how a multi-byte check value is laid out on the wire.
type ByteOrder string

const (
	OrderLittle ByteOrder = "le"
	OrderBig    ByteOrder = "be"
	// OrderNone marks single-byte check values, where order is meaningless.
	OrderNone ByteOrder = "none"
)

// CandidateShape is a checksum construction independent of init/xor-output.
// It is a comparable value type; the matcher uses it directly as a set key.
type CandidateShape struct {
	Poly       uint64    `json:"poly"`
	ReflectIn  bool      `json:"reflectIn"`
	ReflectOut bool      `json:"reflectOut"`
	Order      ByteOrder `json:"order"`
}

func (s CandidateShape) String() string {
	return fmt.Sprintf("poly=0x%X refin=%v refout=%v order=%s", s.Poly, s.ReflectIn, s.ReflectOut, s.Order)
}

// ParameterSet is the recovered description of the checksum function.
type ParameterSet struct {
	Shape CandidateShape `json:"shape"`
	Width int            `json:"width"`
	// Init is always reported as zero. A nonzero true seed cannot be told
	// apart from part of XorOutput by the differential technique; whatever
	// the seed contributes is absorbed into XorOutput.
	Init      uint64 `json:"init"`
	XorOutput uint64 `json:"xorOutput"`
}

func (p ParameterSet) String() string {
	return fmt.Sprintf("width=%d %s init=0x%X xorout=0x%X", p.Width, p.Shape, p.Init, p.XorOutput)
}

// LengthGroup holds the dataset indices of all messages sharing one length,
// in original input order. Built once by Validate and read-only after.
type LengthGroup struct {
	MessageLen int   `json:"messageLen"`
	Indexes    []int `json:"indexes"`
}

// Status tags the outcome of one length group (or the linear pre-check).
type Status string

const (
	StatusLinearCode       Status = "LINEAR_CODE_FOUND"
	StatusSingleSolution   Status = "SINGLE_SOLUTION"
	StatusNoSolution       Status = "NO_SOLUTION"
	StatusAmbiguous        Status = "AMBIGUOUS"
	StatusInsufficientData Status = "INSUFFICIENT_DATA"
)

// LinearKind names the simple-checksum hypothesis that matched.
type LinearKind string

const (
	LinearAdditive LinearKind = "additive"
	LinearXor      LinearKind = "xor"
)

// LinearFinding reports that a plain 8-bit checksum explains the whole
// dataset. It never suppresses the differential search.
type LinearFinding struct {
	Status Status     `json:"status"`
	Kind   LinearKind `json:"kind"`
	Mask   uint8      `json:"mask"`
}

// GroupOutcome is the structured result for one length group.
type GroupOutcome struct {
	MessageLen int              `json:"messageLen"`
	Members    int              `json:"members"`
	Pairs      int              `json:"pairs"`
	Status     Status           `json:"status"`
	Shapes     []CandidateShape `json:"shapes,omitempty"`
	Solutions  []ParameterSet   `json:"solutions,omitempty"`
	Notes      []string         `json:"notes,omitempty"`
}

// SearchReport is the full result of one search run.
type SearchReport struct {
	SessionID string         `json:"sessionId"`
	StartedAt time.Time      `json:"startedAt"`
	Width     int            `json:"width"`
	Messages  int            `json:"messages"`
	Linear    *LinearFinding `json:"linear,omitempty"`
	Groups    []GroupOutcome `json:"groups"`
}

// ConfigError marks invalid input data detected before any search runs.
// Downstream outcomes (no candidates, ambiguity, inconsistent xor-output)
// are reported as GroupOutcome statuses, never as errors.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid input: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
