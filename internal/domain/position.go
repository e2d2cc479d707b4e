package domain

import "strings"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "x"
	case O:
		return "o"
	default:
		return "-"
	}
}

// Side is the player to move.
type Side uint8

const (
	SideX Side = iota
	SideO
)

// Piece returns the cell value a side places on the board.
func (s Side) Piece() Cell {
	if s == SideO {
		return O
	}
	return X
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideO {
		return SideX
	}
	return SideO
}

func (s Side) String() string { return s.Piece().String() }

// better reports whether a beats b from the point of view of s:
// X maximizes, O minimizes. Ties are never better.
func (s Side) better(a, b int) bool {
	if s == SideX {
		return a > b
	}
	return a < b
}

// adjust discounts a child score by ply so that, for s, faster wins and
// slower losses rank higher.
func (s Side) adjust(score, ply int) int {
	if s == SideX {
		return score - ply
	}
	return score + ply
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// NoMove is returned by BestMove when there is nothing left to play.
const NoMove = -1

// Leaf scores.
const (
	WinScore  = 100
	DrawScore = 0
)

var winLines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Position is a board, the side to move and the moves played since the
// position was created. It is mutated in place and is not safe for
// concurrent use.
type Position struct {
	board   Board
	turn    Side
	history []int
}

// NewPosition returns an empty board with X to move.
func NewPosition() *Position {
	return &Position{turn: SideX, history: make([]int, 0, len(Board{}))}
}

// FromBoard builds a position from an arbitrary board. The board is not
// validated.
func FromBoard(b Board, turn Side) *Position {
	return &Position{board: b, turn: turn, history: make([]int, 0, len(b))}
}

// Board returns a copy of the cells in row-major order.
func (p *Position) Board() Board { return p.board }

// Turn returns the side to move.
func (p *Position) Turn() Side { return p.turn }

// At returns the cell at index i.
func (p *Position) At(i int) Cell { return p.board[i] }

// History returns the indices played since creation, oldest first.
func (p *Position) History() []int {
	out := make([]int, len(p.history))
	copy(out, p.history)
	return out
}

// Move places the side to move at index i. The caller must only pass
// empty cells.
func (p *Position) Move(i int) *Position {
	p.board[i] = p.turn.Piece()
	p.turn = p.turn.Other()
	p.history = append(p.history, i)
	return p
}

// Unmove takes back the last move. It panics if no move has been made.
func (p *Position) Unmove() *Position {
	n := len(p.history)
	if n == 0 {
		panic("domain: unmove with empty move history")
	}
	p.board[p.history[n-1]] = Empty
	p.history = p.history[:n-1]
	p.turn = p.turn.Other()
	return p
}

// PossibleMoves lists the empty cells in ascending order.
func (p *Position) PossibleMoves() []int {
	moves := make([]int, 0, len(p.board))
	for i, c := range p.board {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// WinLines returns the contents of the 3 rows, 3 columns and 2 diagonals.
func (p *Position) WinLines() [8][3]Cell {
	var out [8][3]Cell
	for i, ln := range winLines {
		out[i] = [3]Cell{p.board[ln[0]], p.board[ln[1]], p.board[ln[2]]}
	}
	return out
}

// Win reports whether piece owns a complete line.
func (p *Position) Win(piece Cell) bool {
	for _, ln := range p.WinLines() {
		if ln[0] == piece && ln[1] == piece && ln[2] == piece {
			return true
		}
	}
	return false
}

// Blocked reports whether every line holds both an X and an O, so neither
// side can complete one.
func (p *Position) Blocked() bool {
	for _, ln := range p.WinLines() {
		var hasX, hasO bool
		for _, c := range ln {
			hasX = hasX || c == X
			hasO = hasO || c == O
		}
		if !hasX || !hasO {
			return false
		}
	}
	return true
}

// EvaluateLeaf returns the terminal score of the position. ok is false when
// the position is still live.
func (p *Position) EvaluateLeaf() (score int, ok bool) {
	switch {
	case p.Win(X):
		return WinScore, true
	case p.Win(O):
		return -WinScore, true
	case p.Blocked():
		return DrawScore, true
	}
	return 0, false
}

// End reports whether the game is over: a win for either side or a full board.
func (p *Position) End() bool {
	if p.Win(X) || p.Win(O) {
		return true
	}
	for _, c := range p.board {
		if c == Empty {
			return false
		}
	}
	return true
}

// Minimax returns the game-theoretic value of the position, positive for X.
func (p *Position) Minimax() int {
	if score, ok := p.EvaluateLeaf(); ok {
		return score
	}
	var best int
	first := true
	for _, i := range p.PossibleMoves() {
		score := p.turn.adjust(p.MinimaxAfter(i), len(p.history)+1)
		if first || p.turn.better(score, best) {
			best, first = score, false
		}
	}
	return best
}

// MinimaxAfter plays i, evaluates the resulting position and takes the move
// back before returning.
func (p *Position) MinimaxAfter(i int) int {
	p.Move(i)
	defer p.Unmove()
	return p.Minimax()
}

// BestMove returns the legal move with the best value for the side to move.
// The lowest index wins ties.
func (p *Position) BestMove() int {
	best, bestScore := NoMove, 0
	for _, i := range p.PossibleMoves() {
		score := p.MinimaxAfter(i)
		if best == NoMove || p.turn.better(score, bestScore) {
			best, bestScore = i, score
		}
	}
	return best
}

// MoveScore is the MinimaxAfter value of one legal move.
type MoveScore struct {
	Cell  int
	Score int
}

// SearchResult is the value, best move and per-move scores of a position.
type SearchResult struct {
	Value    int
	BestMove int
	Terminal bool
	Moves    []MoveScore
}

// Search scores each legal move once and derives both Minimax and BestMove
// from those scores. A leaf keeps its leaf value; moves left on a blocked
// board are still scored.
func (p *Position) Search() SearchResult {
	r := SearchResult{BestMove: NoMove}
	var bestScore int
	for _, i := range p.PossibleMoves() {
		score := p.MinimaxAfter(i)
		r.Moves = append(r.Moves, MoveScore{Cell: i, Score: score})
		if r.BestMove == NoMove || p.turn.better(score, bestScore) {
			r.BestMove, bestScore = i, score
		}
	}
	if score, ok := p.EvaluateLeaf(); ok {
		r.Value, r.Terminal = score, true
	} else if r.BestMove != NoMove {
		// adjust is monotonic, so the best adjusted child is the adjusted best child.
		r.Value = p.turn.adjust(bestScore, len(p.history)+1)
	}
	return r
}

// String renders the board as a 3x3 grid.
func (p *Position) String() string {
	return p.board.String()
}

func (b Board) String() string { return b.Format(Cell.glyph) }

// Format renders the grid using glyph for each cell: rows of cells joined
// by " | " and separated by a line of dashes.
func (b Board) Format(glyph func(Cell) string) string {
	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			cells[c] = glyph(b[r*3+c])
		}
		rows = append(rows, " "+strings.Join(cells, " | ")+" ")
	}
	return strings.Join(rows, "\n-----------\n") + "\n"
}

func (c Cell) glyph() string {
	if c == Empty {
		return " "
	}
	return c.String()
}
