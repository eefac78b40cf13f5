package usecase

import (
	"voicecal/internal/harness"
	"voicecal/pkg/phrase"
)

// ParseOnly runs the extractor over texts in order.
func (uc *implUseCase) ParseOnly(texts []string, ref phrase.Reference) []harness.ParseResult {
	results := make([]harness.ParseResult, len(texts))
	for i, text := range texts {
		results[i] = harness.ParseResult{Phrase: phrase.Parse(text, ref)}
	}
	return results
}
