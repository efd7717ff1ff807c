package planner

import (
	"errors"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

var (
	// ErrConfig means the upstream credential is not configured.
	ErrConfig = errors.New("missing GROQ_API_KEY")
	// ErrEmptyResponse means the model replied without text content.
	ErrEmptyResponse = errors.New("empty AI response")
	// ErrExtraction means no JSON object could be found in the reply.
	ErrExtraction = errors.New("no JSON found")
	// ErrParse means the extracted text is not valid JSON.
	ErrParse = errors.New("malformed JSON")
)

// Error kinds reported by Kind.
const (
	KindConfig        = "config"
	KindEmptyResponse = "empty_response"
	KindExtraction    = "extraction"
	KindParse         = "parse"
	KindInvalidPlan   = "invalid_plan"
	KindUpstream      = "upstream"
)

// Kind classifies a generation error for logs and metrics. Callers answering
// HTTP requests still flatten every kind into one message.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrExtraction):
		return KindExtraction
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, uischema.ErrInvalidPlan):
		return KindInvalidPlan
	}
	return KindUpstream
}
