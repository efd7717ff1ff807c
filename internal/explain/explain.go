// Package explain describes a generated layout in plain language.
package explain

import "github.com/Shreerajan/UI-Generator/internal/uischema"

const (
	sidebarMain = `I've generated a dashboard layout with sidebar navigation and structured content cards.

Rationale:
- Sidebar provides persistent navigation.
- Cards group related metrics for clarity.
- Structured layout ensures clean separation of concerns.`

	centered = `I've created a centered layout commonly used for authentication or single-action interfaces.

Rationale:
- Centering improves focus.
- Card container visually groups inputs.
- Clear call-to-action button included.`

	modal = `A modal layout was generated to isolate a focused interaction.

Rationale:
- Modal keeps context.
- Primary and secondary actions included.
- Structured for usability.`

	blank = "The AI returned an empty or unsupported structure. Try refining your prompt."

	// Fallback is used for every layout without a dedicated paragraph.
	Fallback = "The UI was generated dynamically using AI planning while preserving strict component determinism."
)

var paragraphs = map[string]string{
	uischema.LayoutSidebarMain: sidebarMain,
	uischema.LayoutCentered:    centered,
	uischema.LayoutModal:       modal,
	uischema.LayoutBlank:       blank,
}

// Explain returns the paragraph for a layout name. Matching is exact.
func Explain(layout string) string {
	if p, ok := paragraphs[layout]; ok {
		return p
	}
	return Fallback
}

// Plan explains a plan by its layout.
func Plan(plan uischema.UIPlan) string {
	return Explain(plan.Layout)
}
