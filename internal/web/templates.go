package web

import (
	"bytes"
	"fmt"
	"html/template"
)

type templates struct {
	index *template.Template
	board *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
</head><body>{{template "content" .}}</body></html>`))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>TicTacToe solver</h1>
<form action="/analyze" method="get" hx-get="/analyze" hx-target="#board" hx-swap="outerHTML">
  <input name="board" value="---------" pattern="[xXoO\- ]{9,}">
  <select name="turn"><option value="x">x to move</option><option value="o">o to move</option></select>
  <button type="submit">Analyze</button>
</form>
<div id="board"></div>`))
	// Standalone board template used for fragment rendering
	board := template.Must(template.New("board_only").Parse(boardTemplate))
	return &templates{index: index, board: board}
}

func renderTemplate(t *template.Template, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{else}}
  <p class="value" data-board="{{.Board}}" data-turn="{{.Turn}}">value {{.Value}}{{if .Terminal}} (game over){{end}}</p>
  {{range .Rows}}
  <div class="row">
    {{range .}}
      {{if .Next}}
      <a class="cell{{if .Best}} best{{end}}" data-cell="{{.Index}}" hx-get="/analyze?board={{.Next}}&turn={{$.NextTurn}}" hx-target="#board" hx-swap="outerHTML" href="/analyze?board={{.Next}}&turn={{$.NextTurn}}">{{.Score}}</a>
      {{else}}
      <span class="cell" data-cell="{{.Index}}">{{.Symbol}}</span>
      {{end}}
    {{end}}
  </div>
  {{end}}
  {{end}}
</div>
`
