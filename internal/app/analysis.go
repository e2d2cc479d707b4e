package app

import "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"

// MoveScore is the minimax value of one legal move.
type MoveScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// Analysis is the solved value of a position.
type Analysis struct {
	Board    string      `json:"board"`
	Turn     string      `json:"turn"`
	Value    int         `json:"value"`
	Terminal bool        `json:"terminal"`
	BestMove int         `json:"best_move"`
	Moves    []MoveScore `json:"moves"`
}

// Analyze solves the position with a single search. It works on its own
// copy of the board, so concurrent calls are safe.
func Analyze(b domain.Board, turn domain.Side) Analysis {
	r := domain.FromBoard(b, turn).Search()
	a := Analysis{
		Board:    b.Notation(),
		Turn:     turn.String(),
		Value:    r.Value,
		Terminal: r.Terminal,
		BestMove: r.BestMove,
		Moves:    make([]MoveScore, 0, len(r.Moves)),
	}
	for _, m := range r.Moves {
		a.Moves = append(a.Moves, MoveScore{Cell: m.Cell, Score: m.Score})
	}
	return a
}

// Score returns the score recorded for cell, if it is a legal move.
func (a Analysis) Score(cell int) (int, bool) {
	for _, m := range a.Moves {
		if m.Cell == cell {
			return m.Score, true
		}
	}
	return 0, false
}
