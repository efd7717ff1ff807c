package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// ErrStale is returned for a reply that arrived after a newer request was
// issued. The reply is discarded.
var ErrStale = errors.New("client: superseded by a newer request")

// Generator is satisfied by *Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error)
}

// Session holds the latest generation for one user. Only the reply to the
// most recently issued prompt is ever applied.
type Session struct {
	gen Generator
	seq atomic.Uint64

	mu      sync.Mutex
	current *uischema.GenerationResult
}

// NewSession creates an empty session.
func NewSession(gen Generator) *Session {
	return &Session{gen: gen}
}

// Submit runs a generation and applies it unless a newer Submit started in
// the meantime.
func (s *Session) Submit(ctx context.Context, prompt string) (uischema.GenerationResult, error) {
	n := s.seq.Add(1)
	res, err := s.gen.Generate(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.Load() != n {
		return uischema.GenerationResult{}, ErrStale
	}
	if err != nil {
		return uischema.GenerationResult{}, err
	}
	s.current = &res
	return res, nil
}

// Current returns the applied result, if any.
func (s *Session) Current() (uischema.GenerationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return uischema.GenerationResult{}, false
	}
	return *s.current, true
}

// Code returns the current code, or the initial placeholder.
func (s *Session) Code() string {
	if res, ok := s.Current(); ok {
		return res.Code
	}
	return codegen.InitialCode
}
