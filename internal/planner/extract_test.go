package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreerajan/UI-Generator/internal/planner"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare object", `{"layout":"modal","components":[]}`, `{"layout":"modal","components":[]}`},
		{"fenced", "```json\n{\"layout\":\"x\",\"components\":[]}\n```", `{"layout":"x","components":[]}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here is your UI:\n{\"a\":{\"b\":2}} hope it helps", `{"a":{"b":2}}`},
		{"surrounding whitespace", "\n\n   {\"a\":true}   \n", `{"a":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := planner.Extract(tt.text)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestExtract_NoObject(t *testing.T) {
	for _, text := range []string{"", "no json here", "} backwards {", "[1,2,3]"} {
		_, err := planner.Extract(text)
		require.Error(t, err, text)
		assert.ErrorIs(t, err, planner.ErrExtraction)
		assert.Equal(t, planner.KindExtraction, planner.Kind(err))
	}
}

func TestExtract_Malformed(t *testing.T) {
	_, err := planner.Extract(`{"layout": "x", }`)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrParse)

	// Two objects: the span runs from the first '{' to the last '}'.
	_, err = planner.Extract(`{"a":1} and {"b":2}`)
	assert.ErrorIs(t, err, planner.ErrParse)
}

func TestSystemPrompt_ListsAllowedTypes(t *testing.T) {
	assert.Contains(t, planner.SystemPrompt, "Button, Card, Input, Sidebar, Modal, Navbar, Chart, Table, div, span, h1, p")
	assert.Contains(t, planner.SystemPrompt, "Return ONLY valid JSON.")

	msgs := planner.Messages("a login form")
	require.Len(t, msgs, 2)
	assert.Equal(t, planner.SystemPrompt, msgs[0].Content)
	assert.Equal(t, "a login form", msgs[1].Content)
}
