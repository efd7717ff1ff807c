package api

import (
	"context"
	"html/template"
	"net/http"

	"github.com/Shreerajan/UI-Generator/internal/observability"
	"github.com/Shreerajan/UI-Generator/internal/ratelimit"
	"github.com/Shreerajan/UI-Generator/internal/render"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// Generator produces validated plans from prompts.
type Generator interface {
	Plan(ctx context.Context, prompt string) (uischema.UIPlan, error)
	Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error)
}

// Server is the HTTP API server for the UI generator.
type Server struct {
	gen      Generator
	registry *render.Registry
	metrics  *observability.Metrics
	budget   *ratelimit.ClientBudget
	page     *template.Template
	mux      *http.ServeMux
	handler  http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records request outcomes and unresolved components.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithBudget limits generation requests per client.
func WithBudget(b *ratelimit.ClientBudget) Option {
	return func(s *Server) { s.budget = b }
}

// WithRegistry replaces the default component registry used for previews.
func WithRegistry(reg *render.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// New creates a Server with the given generator and CORS origins.
func New(gen Generator, corsOrigins []string, opts ...Option) *Server {
	s := &Server{
		gen:      gen,
		registry: render.DefaultRegistry(),
		page:     pageTemplate,
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	s.handler = requestID(logging(cors(corsOrigins, budget(s.budget, s.mux))))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("POST /api/plan", s.handlePlan)
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
	s.mux.HandleFunc("POST /api/render", s.handleRender)
	s.mux.HandleFunc("POST /api/code", s.handleCode)
	s.mux.HandleFunc("POST /api/explain", s.handleExplain)
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("POST /{$}", s.handlePageGenerate)
}

// renderer builds a preview renderer whose unresolved components are
// reported against ctx.
func (s *Server) renderer(ctx context.Context) *render.Renderer {
	return render.New(s.registry, render.WithUnresolvedHook(func(e render.UnresolvedComponentError) {
		s.metrics.RecordUnresolved(ctx, e.Type)
	}))
}
