package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Errors returned when parsing board notation.
var (
	ErrBadNotation = errors.New("bad board notation")
	ErrBadSide     = errors.New("bad side")
)

// ParseBoard reads nine cells written as x, o or - in row-major order.
// Case and whitespace are ignored, so "xx- --- -oo" is accepted.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if n == len(b) {
			return Board{}, fmt.Errorf("%w: more than %d cells in %q", ErrBadNotation, len(b), s)
		}
		switch unicode.ToLower(r) {
		case 'x':
			b[n] = X
		case 'o':
			b[n] = O
		case '-':
			b[n] = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrBadNotation, r, n)
		}
		n++
	}
	if n != len(b) {
		return Board{}, fmt.Errorf("%w: %d cells, want %d", ErrBadNotation, n, len(b))
	}
	return b, nil
}

// ParseSide reads "x" or "o".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return SideX, nil
	case "o":
		return SideO, nil
	}
	return SideX, fmt.Errorf("%w: %q", ErrBadSide, s)
}

// Notation is the inverse of ParseBoard.
func (b Board) Notation() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}
