package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jaminalder/perfect-tic-tac-toe/internal/app"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return NewServer(zaptest.NewLogger(t))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestIndexPage(t *testing.T) {
	rr := get(t, newTestServer(t), "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<form") || !strings.Contains(body, "action=\"/analyze\"") {
		t.Fatalf("index should contain analyze form; got body: %q", body)
	}
}

func TestAnalyzeFragmentMarksBestMove(t *testing.T) {
	rr := get(t, newTestServer(t), "/analyze?board=xx-----oo&turn=x")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "id=\"board\"") {
		t.Fatalf("expected board fragment, got %q", body)
	}
	if !strings.Contains(body, "value 99") {
		t.Fatalf("expected value 99 in %q", body)
	}
	if !strings.Contains(body, `class="cell best" data-cell="2"`) {
		t.Fatalf("expected cell 2 marked best in %q", body)
	}
	if !strings.Contains(body, "board=xxx----oo&turn=o") {
		t.Fatalf("expected link to the position after the winning move in %q", body)
	}
}

func TestAnalyzeRejectsBadBoard(t *testing.T) {
	h := newTestServer(t)
	for _, target := range []string{"/analyze?board=xx", "/analyze?turn=z", "/api/analyze?board=abcdefghi"} {
		if rr := get(t, h, target); rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestAnalyzeJSON(t *testing.T) {
	rr := get(t, newTestServer(t), "/api/analyze?board=xx-----oo&turn=o")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Result().Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	var a app.Analysis
	if err := json.NewDecoder(rr.Body).Decode(&a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Value != -99 || a.BestMove != 6 || a.Turn != "o" || a.Board != "xx-----oo" {
		t.Fatalf("unexpected analysis %+v", a)
	}
}

func TestAnalyzeTerminalHasNoLinks(t *testing.T) {
	body := get(t, newTestServer(t), "/analyze?board=xoxoxxoxo").Body.String()
	if !strings.Contains(body, "game over") || strings.Contains(body, "<a ") {
		t.Fatalf("terminal board should render without move links: %q", body)
	}
}

func TestWriteTemplateFailureIsServerError(t *testing.T) {
	h := &handlers{tpl: loadTemplates(), log: zaptest.NewLogger(t)}
	broken := template.Must(template.New("broken").Parse(`{{.Missing.Field}}`))
	rr := httptest.NewRecorder()
	h.writeTemplate(rr, http.StatusOK, broken, struct{}{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "<div") {
		t.Fatalf("partial render leaked into response: %q", rr.Body.String())
	}
}
