package extract

import "context"

// sampleText stands in for real document extraction until raw upload
// bytes are persisted somewhere the background job can re-fetch them.
const sampleText = "# Artificial Intelligence and Ethics\n" +
	"AI systems must be transparent, fair, and accountable. " +
	"This paper discusses key principles including bias mitigation, explainability, " +
	"and governance frameworks for responsible deployment in healthcare and finance."

// StaticExtractor returns a fixed placeholder text for every upload. It
// satisfies the TextExtractor contract so the rest of the pipeline runs
// unchanged when real extraction is wired in.
type StaticExtractor struct{}

// NewStaticExtractor creates a StaticExtractor.
func NewStaticExtractor() *StaticExtractor {
	return &StaticExtractor{}
}

// ExtractText implements TextExtractor.
func (e *StaticExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	return sampleText, nil
}
