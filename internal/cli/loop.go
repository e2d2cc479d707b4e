package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/app"
	"github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
	"go.uber.org/zap"
)

// Loop runs an interactive game over a line-oriented reader and writer.
type Loop struct {
	in     *bufio.Scanner
	out    io.Writer
	render *Renderer
	log    *zap.Logger
}

// New builds a loop. A nil renderer draws plain text; a nil logger is silent.
func New(in io.Reader, out io.Writer, render *Renderer, log *zap.Logger) *Loop {
	if render == nil {
		render = NewRenderer(out, false)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{in: bufio.NewScanner(in), out: out, render: render, log: log}
}

func (l *Loop) readLine() (string, error) {
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(l.in.Text()), nil
}

// AskForPlayer asks who plays first until it gets 1 or 2.
func (l *Loop) AskForPlayer() (app.Player, error) {
	fmt.Fprintln(l.out, "Who do you want to play first?")
	fmt.Fprintln(l.out, "1. human")
	fmt.Fprintln(l.out, "2. computer")
	for {
		fmt.Fprint(l.out, "choice: ")
		ans, err := l.readLine()
		if err != nil {
			return app.Human, err
		}
		switch ans {
		case "1":
			return app.Human, nil
		case "2":
			return app.Computer, nil
		}
	}
}

// AskForMove asks for a cell index until it names an empty cell.
func (l *Loop) AskForMove(pos *domain.Position) (int, error) {
	for {
		fmt.Fprint(l.out, "move: ")
		ans, err := l.readLine()
		if err != nil {
			return domain.NoMove, err
		}
		if !isDigits(ans) {
			continue
		}
		i, err := strconv.Atoi(ans)
		if err != nil || i >= len(pos.Board()) || pos.At(i) != domain.Empty {
			continue
		}
		return i, nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Play asks who goes first and plays one game to the end.
func (l *Loop) Play() (app.Result, error) {
	first, err := l.AskForPlayer()
	if err != nil {
		return app.Result{}, err
	}
	return l.PlayAs(first)
}

// PlayAs plays one game with first on move, without asking.
func (l *Loop) PlayAs(first app.Player) (app.Result, error) {
	s := app.NewSession(first, l.log)
	pos := s.Game().Position()
	for !s.Over() {
		fmt.Fprint(l.out, l.render.Board(pos.Board()))
		fmt.Fprintln(l.out)
		if s.ToMove() == app.Computer {
			if _, err := s.PlayComputer(); err != nil {
				return app.Result{}, err
			}
			continue
		}
		i, err := l.AskForMove(pos)
		if err != nil {
			return app.Result{}, err
		}
		if err := s.PlayHuman(i); err != nil {
			return app.Result{}, err
		}
	}
	fmt.Fprint(l.out, l.render.Board(pos.Board()))
	res := s.Result()
	fmt.Fprintln(l.out, res)
	return res, nil
}
