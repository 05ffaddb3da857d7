package extract

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// InspectPDF parses the uploaded bytes as a PDF and returns its page
// count. It is used at upload time as a best-effort sanity check; a
// document that does not parse is still accepted, the caller just loses
// the page count metadata.
func InspectPDF(content []byte) (int, error) {
	if len(content) == 0 {
		return 0, fmt.Errorf("empty document")
	}

	pageCount, err := api.PageCount(bytes.NewReader(content), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}

	return pageCount, nil
}
