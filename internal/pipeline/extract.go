package pipeline

import "strings"

// Extractor recovers the value to persist from raw generated text. It never
// fails; implementations degrade to returning the input unchanged.
type Extractor interface {
	Extract(raw string) string
}

type braceExtractor struct{}

// NewBraceExtractor returns the default extractor: the span from the first
// '{' to the last '}', trimmed, on the assumption that the model embedded a
// JSON-shaped payload inside prose. The span is NOT validated as JSON;
// callers needing well-formed structured data must parse the result
// themselves.
func NewBraceExtractor() Extractor {
	return braceExtractor{}
}

func (braceExtractor) Extract(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || start >= end {
		return raw
	}
	return strings.TrimSpace(raw[start : end+1])
}
