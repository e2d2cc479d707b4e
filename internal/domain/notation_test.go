package domain

import (
	"errors"
	"testing"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard("XX- --- -oO")
	if err != nil {
		t.Fatalf("ParseBoard error: %v", err)
	}
	want := Board{X, X, Empty, Empty, Empty, Empty, Empty, O, O}
	if b != want {
		t.Fatalf("unexpected board %v", b)
	}
	if got := b.Notation(); got != "xx-----oo" {
		t.Fatalf("unexpected notation %q", got)
	}
}

func TestParseBoardRejectsBadInput(t *testing.T) {
	for _, s := range []string{"", "xx", "xx--------", "xx-----o?"} {
		if _, err := ParseBoard(s); !errors.Is(err, ErrBadNotation) {
			t.Fatalf("expected ErrBadNotation for %q, got %v", s, err)
		}
	}
}

func TestParseSide(t *testing.T) {
	if s, err := ParseSide("X"); err != nil || s != SideX {
		t.Fatalf("expected SideX, got %v err=%v", s, err)
	}
	if s, err := ParseSide(" o "); err != nil || s != SideO {
		t.Fatalf("expected SideO, got %v err=%v", s, err)
	}
	if _, err := ParseSide("-"); !errors.Is(err, ErrBadSide) {
		t.Fatalf("expected ErrBadSide, got %v", err)
	}
}
