package cli

import (
	"io"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
	"github.com/muesli/termenv"
)

// Renderer draws boards for a terminal, colouring pieces when the output
// supports it.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer detects the colour profile of w. With color false the board
// is always plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Board renders b in the same grid as domain.Board.String.
func (r *Renderer) Board(b domain.Board) string { return b.Format(r.cell) }

func (r *Renderer) cell(c domain.Cell) string {
	switch c {
	case domain.X:
		return r.out.String("x").Foreground(termenv.ANSIRed).Bold().String()
	case domain.O:
		return r.out.String("o").Foreground(termenv.ANSIBlue).Bold().String()
	}
	return " "
}
