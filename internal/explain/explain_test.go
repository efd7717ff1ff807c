package explain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shreerajan/UI-Generator/internal/explain"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		layout string
		prefix string
	}{
		{"sidebar-main", "I've generated a dashboard layout with sidebar navigation"},
		{"centered", "I've created a centered layout commonly used for authentication"},
		{"modal", "A modal layout was generated to isolate a focused interaction."},
		{"blank", "The AI returned an empty or unsupported structure."},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			got := explain.Explain(tt.layout)
			assert.True(t, strings.HasPrefix(got, tt.prefix), got)
		})
	}
}

func TestExplain_Modal(t *testing.T) {
	assert.Equal(t, "A modal layout was generated to isolate a focused interaction.\n\nRationale:\n- Modal keeps context.\n- Primary and secondary actions included.\n- Structured for usability.",
		explain.Explain("modal"))
}

func TestExplain_Fallback(t *testing.T) {
	for _, layout := range []string{"default", "grid", "", "Modal", " centered"} {
		assert.Equal(t, explain.Fallback, explain.Explain(layout), layout)
	}
	assert.Equal(t, explain.Fallback, explain.Plan(uischema.UIPlan{Layout: "split"}))
}
