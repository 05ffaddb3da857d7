// Package extract is the document-content-extraction boundary of the
// pipeline. The background job obtains its source text through the
// TextExtractor interface; a real extraction step can be substituted
// without changing the surrounding pipeline contract.
package extract

import "context"

// TextExtractor produces the text the content generator works from.
type TextExtractor interface {
	// ExtractText returns the extracted text for the given upload. The
	// raw document bytes are not retained after upload, so extraction
	// works from the upload metadata alone for now.
	ExtractText(ctx context.Context, uploadID string) (string, error)
}
