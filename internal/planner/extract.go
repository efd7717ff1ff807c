package planner

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract pulls the JSON object out of a model reply. Code fence markers are
// removed first; the object spans from the first '{' to the last '}'.
func Extract(text string) (json.RawMessage, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("planner: %w", ErrExtraction)
	}

	candidate := cleaned[start : end+1]
	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, fmt.Errorf("planner: %w: %v", ErrParse, err)
	}
	return json.RawMessage(candidate), nil
}
