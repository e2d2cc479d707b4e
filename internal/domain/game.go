package domain

import "errors"

// Errors returned by Game.Play.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// Game guards a Position against untrusted input during play.
type Game struct {
	pos *Position
}

// NewGame returns a game on an empty board with X to move.
func NewGame() *Game {
	return &Game{pos: NewPosition()}
}

// Play places the side to move at cell i (0..8).
func (g *Game) Play(i int) error {
	if g.pos.End() {
		return ErrGameOver
	}
	if i < 0 || i >= len(g.pos.board) {
		return ErrOutOfBounds
	}
	if g.pos.board[i] != Empty {
		return ErrOccupied
	}
	g.pos.Move(i)
	return nil
}

// Position exposes the underlying position. Callers that mutate it are
// responsible for keeping moves legal.
func (g *Game) Position() *Position { return g.pos }

// Over reports whether no further moves may be played.
func (g *Game) Over() bool { return g.pos.End() }

// Winner returns the piece that completed a line, or Empty.
func (g *Game) Winner() Cell {
	switch {
	case g.pos.Win(X):
		return X
	case g.pos.Win(O):
		return O
	}
	return Empty
}

// Draw reports whether neither side can still complete a line.
func (g *Game) Draw() bool { return g.Winner() == Empty && g.pos.Blocked() }

// Moves returns the number of moves played.
func (g *Game) Moves() int { return len(g.pos.history) }
