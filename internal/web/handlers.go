package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/app"
	"github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
	"go.uber.org/zap"
)

type handlers struct {
	tpl *templates
	log *zap.Logger
}

type cellView struct {
	Index  int
	Symbol string
	Score  string
	Best   bool
	Next   string
}

type boardView struct {
	Board    string
	Turn     string
	NextTurn string
	Value    int
	Terminal bool
	Rows     [3][3]cellView
	Error    string
}

func newBoardView(b domain.Board, turn domain.Side, a app.Analysis) boardView {
	v := boardView{
		Board:    a.Board,
		Turn:     a.Turn,
		NextTurn: turn.Other().String(),
		Value:    a.Value,
		Terminal: a.Terminal,
	}
	for i, c := range b {
		cv := cellView{Index: i, Best: i == a.BestMove}
		if c != domain.Empty {
			cv.Symbol = c.String()
		} else if score, ok := a.Score(i); ok {
			cv.Score = strconv.Itoa(score)
			next := b
			next[i] = turn.Piece()
			cv.Next = next.Notation()
		}
		v.Rows[i/3][i%3] = cv
	}
	return v
}

// parseQuery reads board and turn; both default to the opening position.
func parseQuery(r *http.Request) (domain.Board, domain.Side, error) {
	var b domain.Board
	turn := domain.SideX
	q := r.URL.Query()
	if s := q.Get("board"); s != "" {
		var err error
		if b, err = domain.ParseBoard(s); err != nil {
			return b, turn, err
		}
	}
	if s := q.Get("turn"); s != "" {
		var err error
		if turn, err = domain.ParseSide(s); err != nil {
			return b, turn, err
		}
	}
	return b, turn, nil
}

// writeTemplate renders the whole body before writing any header; a failed
// render becomes a 500.
func (h *handlers) writeTemplate(w http.ResponseWriter, status int, t *template.Template, data any) {
	body, err := renderTemplate(t, "", data)
	if err != nil {
		h.log.Warn("render template", zap.Error(err))
		http.Error(w, "failed to render", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Warn("write response", zap.Error(err))
	}
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	h.writeTemplate(w, http.StatusOK, h.tpl.index, nil)
}

func (h *handlers) analyze(w http.ResponseWriter, r *http.Request) {
	b, turn, err := parseQuery(r)
	if err != nil {
		h.writeTemplate(w, http.StatusBadRequest, h.tpl.board, boardView{Error: err.Error()})
		return
	}
	a := app.Analyze(b, turn)
	h.log.Debug("analyzed", zap.String("board", a.Board), zap.String("turn", a.Turn), zap.Int("value", a.Value))
	h.writeTemplate(w, http.StatusOK, h.tpl.board, newBoardView(b, turn, a))
}

func (h *handlers) analyzeJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	b, turn, err := parseQuery(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if err := json.NewEncoder(w).Encode(app.Analyze(b, turn)); err != nil {
		h.log.Warn("encode analysis", zap.Error(fmt.Errorf("write response: %w", err)))
	}
}
