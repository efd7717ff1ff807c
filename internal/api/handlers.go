package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/explain"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

const (
	msgPromptRequired = "Prompt required"
	msgBackendError   = "Backend or AI error occurred."
	msgInvalidBody    = "invalid request body"

	maxBodyBytes = 1 << 20
)

var validate = validator.New()

// PromptRequest is the body of the plan and generate endpoints.
type PromptRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ExplainRequest is the body of the explain endpoint.
type ExplainRequest struct {
	Layout string `json:"layout"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	prompt, ok := decodePrompt(w, r)
	if !ok {
		return
	}
	plan, err := s.gen.Plan(r.Context(), prompt)
	if err != nil {
		s.routeError(w, r, err)
		return
	}
	s.metrics.RecordPlanRequest(r.Context(), r.URL.Path, "ok", "")
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	prompt, ok := decodePrompt(w, r)
	if !ok {
		return
	}
	res, err := s.gen.Generate(r.Context(), prompt)
	if err != nil {
		s.routeError(w, r, err)
		return
	}
	s.metrics.RecordPlanRequest(r.Context(), r.URL.Path, "ok", "")
	writeJSON(w, http.StatusOK, res)
}

// handleRender never fails on a bad plan: the preview shows the
// no-valid-plan message instead.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	plan, err := uischema.ParsePlan(body)
	if err != nil {
		slog.Debug("render: unparseable plan", "error", err, "request_id", RequestIDFromContext(r.Context()))
	}
	out, err := s.renderer(r.Context()).HTML(plan)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out)
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	plan, err := uischema.DecodePlan(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"code": codegen.Plan(plan)})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"explanation": explain.Explain(req.Layout)})
}

// decodePrompt writes the 400 response itself when the prompt is missing.
func decodePrompt(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req PromptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return "", false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return "", false
	}
	return req.Prompt, true
}

// routeError logs the cause and answers with the generic message.
func (s *Server) routeError(w http.ResponseWriter, r *http.Request, err error) {
	s.recordFailure(r, err)
	writeError(w, http.StatusInternalServerError, msgBackendError)
}

func (s *Server) recordFailure(r *http.Request, err error) {
	kind := planner.Kind(err)
	slog.Error("route error",
		"path", r.URL.Path,
		"kind", kind,
		"error", err,
		"request_id", RequestIDFromContext(r.Context()),
	)
	s.metrics.RecordPlanRequest(r.Context(), r.URL.Path, "error", kind)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
