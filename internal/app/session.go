package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
	"go.uber.org/zap"
)

// Errors exposed by the session layer.
var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrBadPlayer   = errors.New("unknown player")
)

// Player identifies who controls a side.
type Player uint8

const (
	Human Player = iota
	Computer
)

func (p Player) String() string {
	if p == Computer {
		return "computer"
	}
	return "human"
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Computer {
		return Human
	}
	return Computer
}

// ParsePlayer accepts "human"/"computer" or the menu numbers "1"/"2".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "human":
		return Human, nil
	case "2", "computer":
		return Computer, nil
	}
	return Human, fmt.Errorf("%w: %q", ErrBadPlayer, s)
}

// Result is the outcome of a finished session.
type Result struct {
	Draw   bool
	Winner Player
}

func (r Result) String() string {
	if r.Draw {
		return "draw"
	}
	return "winner: " + r.Winner.String()
}

// Session is a single human-versus-computer game. The player chosen to go
// first plays X.
type Session struct {
	ID    string
	first Player
	game  *domain.Game
	log   *zap.Logger
}

// NewSession starts a game with first playing X. A nil logger disables logging.
func NewSession(first Player, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := newSessionID()
	s := &Session{
		ID:    id,
		first: first,
		game:  domain.NewGame(),
		log:   log.With(zap.String("session", id)),
	}
	s.log.Info("session started", zap.Stringer("first", first))
	return s
}

// Game returns the game being played.
func (s *Session) Game() *domain.Game { return s.game }

// ToMove returns the player whose turn it is.
func (s *Session) ToMove() Player {
	if s.game.Position().Turn() == domain.SideX {
		return s.first
	}
	return s.first.Other()
}

// Over reports whether the game has finished.
func (s *Session) Over() bool { return s.game.Over() }

// PlayHuman applies the human's move at cell i.
func (s *Session) PlayHuman(i int) error {
	if s.game.Over() {
		return domain.ErrGameOver
	}
	if s.ToMove() != Human {
		return ErrNotYourTurn
	}
	return s.play(Human, i)
}

// PlayComputer searches for and applies the computer's move.
func (s *Session) PlayComputer() (int, error) {
	if s.game.Over() {
		return domain.NoMove, domain.ErrGameOver
	}
	if s.ToMove() != Computer {
		return domain.NoMove, ErrNotYourTurn
	}
	i := s.game.Position().BestMove()
	if err := s.play(Computer, i); err != nil {
		return domain.NoMove, err
	}
	return i, nil
}

func (s *Session) play(p Player, i int) error {
	side := s.game.Position().Turn()
	if err := s.game.Play(i); err != nil {
		s.log.Debug("move rejected", zap.Stringer("player", p), zap.Int("cell", i), zap.Error(err))
		return fmt.Errorf("%s move %d: %w", p, i, err)
	}
	s.log.Debug("move played",
		zap.Stringer("player", p),
		zap.Stringer("side", side),
		zap.Int("cell", i),
		zap.String("board", s.game.Position().Board().Notation()),
	)
	if s.game.Over() {
		s.log.Info("session finished", zap.Stringer("result", s.Result()), zap.Int("moves", s.game.Moves()))
	}
	return nil
}

// Result reports the outcome. It is only meaningful once Over is true; the
// winner is whoever made the last move.
func (s *Session) Result() Result {
	if s.game.Winner() == domain.Empty {
		return Result{Draw: true}
	}
	return Result{Winner: s.ToMove().Other()}
}
