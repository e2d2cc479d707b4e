package app

import (
	"sync"
	"testing"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
)

func mustBoard(t *testing.T, s string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard(%q): %v", s, err)
	}
	return b
}

func TestAnalyzeWinInOne(t *testing.T) {
	a := Analyze(mustBoard(t, "xx- --- -oo"), domain.SideX)
	if a.Value != 99 || a.BestMove != 2 || a.Terminal {
		t.Fatalf("unexpected analysis %+v", a)
	}
	if len(a.Moves) != 5 {
		t.Fatalf("expected 5 scored moves, got %d", len(a.Moves))
	}
	if s, ok := a.Score(2); !ok || s != 100 {
		t.Fatalf("expected cell 2 to score 100, got %d ok=%v", s, ok)
	}
	if _, ok := a.Score(0); ok {
		t.Fatalf("occupied cell must not be scored")
	}
}

func TestAnalyzeTerminal(t *testing.T) {
	a := Analyze(mustBoard(t, "xox oxx oxo"), domain.SideX)
	if !a.Terminal || a.Value != 0 || a.BestMove != domain.NoMove || len(a.Moves) != 0 {
		t.Fatalf("unexpected analysis %+v", a)
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	b := mustBoard(t, "x-- --- ---")
	var wg sync.WaitGroup
	results := make([]Analysis, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Analyze(b, domain.SideO)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if r.Value != results[0].Value || r.BestMove != results[0].BestMove {
			t.Fatalf("result %d differs: %+v vs %+v", i, r, results[0])
		}
	}
	if results[0].BestMove != 4 {
		t.Fatalf("expected O to answer a corner with the centre, got %d", results[0].BestMove)
	}
}

func TestAnalyzeAgreesWithPosition(t *testing.T) {
	for _, s := range []string{"xx- --- -oo", "x-- -o- ---", "oo- --- x--"} {
		for _, turn := range []domain.Side{domain.SideX, domain.SideO} {
			b := mustBoard(t, s)
			a := Analyze(b, turn)
			p := domain.FromBoard(b, turn)
			if want := p.Minimax(); a.Value != want {
				t.Fatalf("%s/%v: value %d, Minimax %d", s, turn, a.Value, want)
			}
			if want := p.BestMove(); a.BestMove != want {
				t.Fatalf("%s/%v: best %d, BestMove %d", s, turn, a.BestMove, want)
			}
		}
	}
}
