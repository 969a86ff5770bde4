package beagle

import (
	"errors"
	"testing"
)

func TestValidateCountMismatch(t *testing.T) {
	messages := [][]byte{{1, 2}, {3, 4}, {5, 6}}
	checks := [][]byte{{0xAA}, {0xBB}}
	_, _, err := Validate(messages, checks)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidateInconsistentCheckLengths(t *testing.T) {
	messages := [][]byte{{1, 2}, {3, 4}}
	checks := [][]byte{{0xAA, 0xBB}, {0xCC}}
	_, _, err := Validate(messages, checks)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidateScalarCheckValue(t *testing.T) {
	messages := [][]byte{{1, 2}, {3, 4}}
	checks := [][]byte{{0xAA}, nil}
	_, _, err := Validate(messages, checks)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidateUnsupportedWidth(t *testing.T) {
	messages := [][]byte{{1, 2}, {3, 4}}
	checks := [][]byte{{1, 2, 3}, {4, 5, 6}}
	_, _, err := Validate(messages, checks)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestValidateGroupsByLength(t *testing.T) {
	messages := [][]byte{
		{1, 2, 3},
		{4, 5},
		{6, 7, 8},
		{9, 10},
		{11, 12, 13, 14},
	}
	checks := [][]byte{{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}
	width, groups, err := Validate(messages, checks)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if width != 16 {
		t.Fatalf("width = %d, want 16", width)
	}
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	// First-seen order: len 3, len 2, len 4.
	if groups[0].MessageLen != 3 || groups[1].MessageLen != 2 || groups[2].MessageLen != 4 {
		t.Fatalf("unexpected group order: %+v", groups)
	}
	if got, want := len(groups[0].Indexes), 2; got != want {
		t.Fatalf("len-3 group has %d members, want %d", got, want)
	}
	if groups[0].Indexes[0] != 0 || groups[0].Indexes[1] != 2 {
		t.Fatalf("len-3 group indexes = %v, want [0 2]", groups[0].Indexes)
	}
}
