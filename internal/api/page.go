package api

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

type pageData struct {
	Prompt      string
	Error       string
	Preview     template.HTML
	Code        string
	Explanation string
	Layout      string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>UI Generator</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; display: grid; grid-template-columns: 1fr 1fr; height: 100vh; }
section { padding: 16px; overflow: auto; }
textarea { width: 100%; min-height: 80px; }
pre { background: #111; color: #eee; padding: 12px; white-space: pre-wrap; }
.uigen-error { color: #b00; }
.uigen-card { border: 1px solid #ddd; border-radius: 8px; padding: 16px; }
.uigen-chart-bar { background: #4a7; color: #fff; margin: 2px 0; }
</style>
</head>
<body>
<section>
<form method="post" action="/">
<label for="prompt">Describe the UI</label>
<textarea id="prompt" name="prompt">{{.Prompt}}</textarea>
<button type="submit">Generate</button>
</form>
{{if .Error}}<p class="uigen-error">{{.Error}}</p>{{end}}
<h2>Code</h2>
<pre><code>{{.Code}}</code></pre>
{{if .Explanation}}<h2>Explanation</h2>
<p data-layout="{{.Layout}}">{{.Explanation}}</p>{{end}}
</section>
<section>
<h2>Preview</h2>
{{.Preview}}
</section>
</body>
</html>
`))

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK, pageData{Code: codegen.InitialCode})
}

func (s *Server) handlePageGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	prompt := strings.TrimSpace(r.PostFormValue("prompt"))
	if prompt == "" {
		s.writePage(w, r, http.StatusBadRequest, pageData{Code: codegen.InitialCode, Error: msgPromptRequired})
		return
	}

	res, err := s.gen.Generate(r.Context(), prompt)
	if err != nil {
		s.recordFailure(r, err)
		s.writePage(w, r, http.StatusInternalServerError, pageData{Prompt: prompt, Code: codegen.InitialCode, Error: msgBackendError})
		return
	}
	s.metrics.RecordPlanRequest(r.Context(), r.URL.Path, "ok", "")

	data := pageData{
		Prompt:      prompt,
		Code:        res.Code,
		Explanation: res.Explanation,
		Layout:      res.Plan.Layout,
	}
	data.Preview = s.preview(r, &res.Plan)
	s.writePage(w, r, http.StatusOK, data)
}

// preview renders the plan to trusted markup. Attributes that could run
// script are already dropped by the renderer.
func (s *Server) preview(r *http.Request, plan *uischema.UIPlan) template.HTML {
	out, err := s.renderer(r.Context()).HTML(plan)
	if err != nil {
		slog.Error("preview render", "error", err, "request_id", RequestIDFromContext(r.Context()))
		return ""
	}
	return template.HTML(out) //nolint:gosec // sanitised by the renderer
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	if data.Preview == "" {
		data.Preview = s.preview(r, nil)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		slog.Error("page render", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
}
